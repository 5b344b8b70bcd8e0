package render

import "github.com/taigrr/orrery/pkg/math3d"

// Vertex carries one mesh vertex through the pipeline. TransformVertex
// fills the Screen and WorldNormal fields on a copy; a transformed
// vertex is never mutated again.
type Vertex struct {
	Position math3d.Vec3 // Model-space position
	Normal   math3d.Vec3 // Model-space normal
	UV       math3d.Vec2 // Texture coordinates
	Color    Color       // Base vertex color

	Screen      math3d.Vec3 // Pixel-space position (z = normalized depth)
	WorldNormal math3d.Vec3 // Normal after the normal-matrix transform
}

// TransformVertex maps a model-space vertex into screen space through
// the full model -> view -> projection -> perspective-divide -> viewport
// chain, and transforms the normal by the inverse-transpose of the model
// matrix (identity when the model matrix is singular). The normal is not
// renormalized here; the rasterizer renormalizes the interpolated value.
func TransformVertex(v Vertex, u *Uniforms) Vertex {
	clip := u.Projection.Mul(u.View).Mul(u.Model).
		MulVec4(math3d.V4FromV3(v.Position, 1))

	ndc := clip.PerspectiveDivide()
	screen := u.Viewport.MulVec4(math3d.V4FromV3(ndc, 1))

	out := v
	out.Screen = screen.Vec3()
	out.WorldNormal = math3d.NormalMatrix(u.Model).MulVec3(v.Normal)
	return out
}
