package model

// Shape names the input form that decides how a date string is parsed.
type Shape string

const (
	ShapeAbsent   Shape = "absent"   // null input; resolves to the current time
	ShapeEmpty    Shape = "empty"    // "" or whitespace only
	ShapeISO      Shape = "iso"      // contains 'T'; native parser
	ShapeDateTime Shape = "datetime" // "YYYY-MM-DD HH:MM:SS[.fff]"; local zone
	ShapeDate     Shape = "date"     // "YYYY-MM-DD"; UTC midnight
)

// AllShapes lists the shapes in report order.
var AllShapes = []Shape{ShapeDate, ShapeDateTime, ShapeISO, ShapeEmpty, ShapeAbsent}
