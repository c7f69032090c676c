package entity

// Renderer handles rendering simulation entities
type Renderer interface {
	RenderBlackHole(hole *BlackHole)
	RenderRay(ray *LightRay)
	Clear()
	Present()
}
