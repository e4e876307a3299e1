package repository

import "retirement-planner/domain"

type PlanRepository interface {
	Save(input domain.PlanInput, result domain.PlanResult) error
}
