package component

import "image/color"

// Appearance is how the renderer fills an entity's parts. Accent, when set,
// replaces Fill for lethal parts.
type Appearance struct {
	Fill        color.RGBA
	Accent      color.RGBA
	RenderLayer int
}

var AppearanceComponent = NewComponent[Appearance]()
