package services

import "github.com/omondi/shulehub/internal/app/models/dto"

// Position keys used by the council catalogue.
const (
	PositionPresident           = "President"
	PositionVicePresident       = "VicePresident"
	PositionSecretaryGeneral    = "SecretaryGeneral"
	PositionTreasurer           = "Treasurer"
	PositionAcademicsDirector   = "AcademicsDirector"
	PositionSportsDirector      = "SportsDirector"
	PositionWelfareDirector     = "WelfareDirector"
	PositionEnvironmentDirector = "EnvironmentDirector"
	PositionDormCaptain         = "DormCaptain"
	PositionClassRepresentative = "ClassRepresentative"
	PositionClassAssistant      = "ClassAssistant"
)

// positionCatalogue is the static council hierarchy. Level 1 is the
// top of the hierarchy; class-scoped positions carry a form/stream pair
// that must match the holder's own placement.
var positionCatalogue = []dto.PositionInfo{
	{Key: PositionPresident, Department: "Executive", Label: "School President", Level: 1},
	{Key: PositionVicePresident, Department: "Executive", Label: "Vice President", Level: 1},
	{Key: PositionSecretaryGeneral, Department: "Executive", Label: "Secretary General", Level: 2},
	{Key: PositionTreasurer, Department: "Executive", Label: "Treasurer", Level: 2},
	{Key: PositionAcademicsDirector, Department: "Academics", Label: "Director of Academics", Level: 2},
	{Key: PositionSportsDirector, Department: "Sports", Label: "Director of Sports", Level: 2},
	{Key: PositionWelfareDirector, Department: "Welfare", Label: "Director of Welfare", Level: 2},
	{Key: PositionEnvironmentDirector, Department: "Environment", Label: "Director of Environment", Level: 2},
	{Key: PositionDormCaptain, Department: "Welfare", Label: "Dormitory Captain", Level: 3},
	{Key: PositionClassRepresentative, Department: "Academics", Label: "Class Representative", Level: 3, ClassScoped: true},
	{Key: PositionClassAssistant, Department: "Academics", Label: "Class Assistant", Level: 4, ClassScoped: true},
}

// LookupPosition finds a catalogue entry by key.
func LookupPosition(key string) (dto.PositionInfo, bool) {
	for _, p := range positionCatalogue {
		if p.Key == key {
			return p, true
		}
	}
	return dto.PositionInfo{}, false
}

// PositionCatalogue returns the full hierarchy for the console.
func PositionCatalogue() []dto.PositionInfo {
	out := make([]dto.PositionInfo, len(positionCatalogue))
	copy(out, positionCatalogue)
	return out
}
