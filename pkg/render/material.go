package render

// Material selects which procedural surface a body is shaded with.
type Material int

const (
	MaterialNeon Material = iota
	MaterialSwirl
	MaterialRinged
	MaterialOcean
	MaterialCellular
	MaterialMottled
	MaterialStar
	MaterialRocky
	MaterialGasGiant
	MaterialClay

	materialCount
)

// DefaultMaterial is used when a selector does not map to a known
// material.
const DefaultMaterial = MaterialMottled

var materialNames = [...]string{
	"neon",
	"swirl",
	"ringed",
	"ocean",
	"cellular",
	"mottled",
	"star",
	"rocky",
	"gas-giant",
	"clay",
}

func (m Material) String() string {
	if m < 0 || m >= materialCount {
		return "unknown"
	}
	return materialNames[m]
}

// MaterialFromID maps a numeric selector (keyboard digit, config value)
// to a material, falling back to DefaultMaterial for anything out of
// range.
func MaterialFromID(id int) Material {
	if id < 0 || id >= int(materialCount) {
		return DefaultMaterial
	}
	return Material(id)
}

// Shade runs the material's fragment shader and returns the final pixel
// color. Unknown materials shade as DefaultMaterial.
func Shade(f *Fragment, u *Uniforms, m Material) Color {
	switch m {
	case MaterialNeon:
		return shadeNeon(f, u)
	case MaterialSwirl:
		return shadeSwirl(f, u)
	case MaterialRinged:
		return shadeRinged(f, u)
	case MaterialOcean:
		return shadeOcean(f, u)
	case MaterialCellular:
		return shadeCellular(f, u)
	case MaterialMottled:
		return shadeMottled(f, u)
	case MaterialStar:
		return shadeStar(f, u)
	case MaterialRocky:
		return shadeRocky(f, u)
	case MaterialGasGiant:
		return shadeGasGiant(f, u)
	case MaterialClay:
		return shadeClay(f, u)
	default:
		return shadeMottled(f, u)
	}
}
