package constants

// ProgramType metadata untuk filter & statistik dashboard (bukan business logic)
type ProgramType struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

const DefaultProgramType = "hse_plan"

// ProgramTypes mengikuti tipe jadwal legacy
var ProgramTypes = map[string]ProgramType{
	"hse_plan":        {Label: "📋 HSE Plan", Color: "#e67e22"},
	"hse_committee":   {Label: "🏢 HSE Committee", Color: "#9b59b6"},
	"spr":             {Label: "📊 SPR Meeting", Color: "#1abc9c"},
	"hazid_hazop":     {Label: "⚠️ HAZID/HAZOP", Color: "#e74c3c"},
	"safety_training": {Label: "🎓 Safety Training", Color: "#3498db"},
	"inspection":      {Label: "🔍 Inspection", Color: "#27ae60"},
}

// ProgramTypeKeys urutan stabil untuk agregasi by_type
var ProgramTypeKeys = []string{
	"hse_plan",
	"hse_committee",
	"spr",
	"hazid_hazop",
	"safety_training",
	"inspection",
}
