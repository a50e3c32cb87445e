package gradebook

import (
	"github.com/trezcool/gradebook/core"
)

// validation tags
const (
	nameTag   = "notblank"
	scoreTag  = "notnan,gte=0,lte=100"
	pointsTag = "notnan"
)

func validateStruct(s interface{}) error { return core.ValidateStruct(s) }

func validateName(field, name string) error {
	return core.ValidateVar(field, name, nameTag)
}

func validateScore(score float64) error {
	return core.ValidateVar("score", score, scoreTag)
}

func validatePoints(points float64) error {
	return core.ValidateVar("points", points, pointsTag)
}
