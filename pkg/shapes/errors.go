package shapes

import "errors"

var (
	ErrInvalidDivisions   = errors.New("shapes: globe needs at least 3 longitude and 2 latitude divisions")
	ErrInvalidColorRange  = errors.New("shapes: color range must satisfy 0 <= min <= max <= 1")
	ErrInvalidOrientation = errors.New("shapes: orientation must be BackToFront or FrontToBack")
	ErrNilPoints          = errors.New("shapes: points buffer is nil")
)
