package stdlib

import "github.com/cadrun/kclexec/kclvalue"

// Builtins lists every standard-library native, keyed by the name a
// kcl program calls it under (spec.md §4.G). A host wires these into
// fresh program memory before running any statement.
func Builtins() map[string]kclvalue.NativeFunc {
	return map[string]kclvalue.NativeFunc{
		"startSketchOn":   kclvalue.NativeFunc(StartSketchOn),
		"startSketchAt":   kclvalue.NativeFunc(StartSketchAt),
		"startProfileAt":  kclvalue.NativeFunc(StartProfileAt),

		"line":   kclvalue.NativeFunc(Line),
		"lineTo": kclvalue.NativeFunc(LineTo),
		"xLine":  kclvalue.NativeFunc(XLine),
		"yLine":  kclvalue.NativeFunc(YLine),
		"xLineTo": kclvalue.NativeFunc(XLineTo),
		"yLineTo": kclvalue.NativeFunc(YLineTo),

		"angledLine":               kclvalue.NativeFunc(AngledLine),
		"angledLineOfXLength":      kclvalue.NativeFunc(AngledLineOfXLength),
		"angledLineOfYLength":      kclvalue.NativeFunc(AngledLineOfYLength),
		"angledLineToX":            kclvalue.NativeFunc(AngledLineToX),
		"angledLineToY":            kclvalue.NativeFunc(AngledLineToY),
		"angledLineThatIntersects": kclvalue.NativeFunc(AngledLineThatIntersects),

		"arc":             kclvalue.NativeFunc(Arc),
		"tangentialArc":   kclvalue.NativeFunc(TangentialArc),
		"tangentialArcTo": kclvalue.NativeFunc(TangentialArcTo),
		"bezierCurve":     kclvalue.NativeFunc(BezierCurve),

		"close": kclvalue.NativeFunc(Close),
		"hole":  kclvalue.NativeFunc(Hole),

		"translate": kclvalue.NativeFunc(Translate),
		"rotate":    kclvalue.NativeFunc(Rotate),

		"segLen":   kclvalue.NativeFunc(SegLen),
		"segAngle": kclvalue.NativeFunc(SegAngle),
		"segEndX":  kclvalue.NativeFunc(SegEndX),
		"segEndY":  kclvalue.NativeFunc(SegEndY),
		"legLen":   kclvalue.NativeFunc(LegLen),
		"legAngX":  kclvalue.NativeFunc(LegAngX),
		"legAngY":  kclvalue.NativeFunc(LegAngY),

		"extrude": kclvalue.NativeFunc(Extrude),

		"min": kclvalue.NativeFunc(Min),
		"max": kclvalue.NativeFunc(Max),
	}
}
