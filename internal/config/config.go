// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 600
	ScreenHeight = 600
	WindowTitle  = "Drawing shapes"
	TargetFPS    = 60

	DefaultShapeSize = 50.0
	DefaultColor     = "black"
	MinRandomSize    = 20
	MaxRandomSize    = 200

	// Треугольник по умолчанию: маленький, в левом верхнем углу
	DefaultTriangleX1 = 0.0
	DefaultTriangleY1 = 0.0
	DefaultTriangleX2 = 20.0
	DefaultTriangleY2 = 0.0
	DefaultTriangleX3 = 20.0
	DefaultTriangleY3 = 20.0

	OutlineColor = "black"
	OutlineWidth = 1.0

	EllipseSegments = 64
	RandomShapes    = 10

	BackendEbiten = "ebiten"
	BackendRaylib = "raylib"
	BackendPNG    = "png"
	BackendSVG    = "svg"
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	FallbackColor   = color.RGBA{0, 0, 0, 255}

	// Palette is the set of colors a randomized shape can take.
	Palette = []string{
		"red",
		"yellow",
		"blue",
		"green",
		"gray",
		"white",
		"black",
		"cyan",
		"pink",
		"purple",
	}
)
