package profile

import (
	"strings"
)

type Gender string

const (
	GenderMale       Gender = "MALE"
	GenderFemale     Gender = "FEMALE"
	GenderGenderless Gender = "GENDERLESS"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderGenderless}

type Animation string

const (
	AnimationLookAround           Animation = "LOOK_AROUND"
	AnimationWalkAround           Animation = "WALK_AROUND"
	AnimationWalkLookAround       Animation = "WALK_LOOK_AROUND"
	AnimationWalkVertically       Animation = "WALK_VERTICALLY"
	AnimationWalkHorizontally     Animation = "WALK_HORIZONTALLY"
	AnimationWalkLookHorizontally Animation = "WALK_LOOK_HORIZONTALLY"
	AnimationSpinRight            Animation = "SPIN_RIGHT"
	AnimationSpinLeft             Animation = "SPIN_LEFT"
)

var Animations = []Animation{
	AnimationLookAround,
	AnimationWalkAround,
	AnimationWalkLookAround,
	AnimationWalkVertically,
	AnimationWalkHorizontally,
	AnimationWalkLookHorizontally,
	AnimationSpinRight,
	AnimationSpinLeft,
}

type VisitorType string

const (
	VisitorYoungster         VisitorType = "YOUNGSTER"
	VisitorLass              VisitorType = "LASS"
	VisitorAceTrainerMale    VisitorType = "ACE_TRAINER_MALE"
	VisitorAceTrainerFemale  VisitorType = "ACE_TRAINER_FEMALE"
	VisitorRangerMale        VisitorType = "RANGER_MALE"
	VisitorRangerFemale      VisitorType = "RANGER_FEMALE"
	VisitorBreederMale       VisitorType = "BREEDER_MALE"
	VisitorBreederFemale     VisitorType = "BREEDER_FEMALE"
	VisitorScientistMale     VisitorType = "SCIENTIST_MALE"
	VisitorScientistFemale   VisitorType = "SCIENTIST_FEMALE"
	VisitorHiker             VisitorType = "HIKER"
	VisitorParasolLady       VisitorType = "PARASOL_LADY"
	VisitorRoughneck         VisitorType = "ROUGHNECK"
	VisitorNurse             VisitorType = "NURSE"
	VisitorPreschoolerMale   VisitorType = "PRESCHOOLER_MALE"
	VisitorPreschoolerFemale VisitorType = "PRESCHOOLER_FEMALE"
)

var VisitorTypes = []VisitorType{
	VisitorYoungster,
	VisitorLass,
	VisitorAceTrainerMale,
	VisitorAceTrainerFemale,
	VisitorRangerMale,
	VisitorRangerFemale,
	VisitorBreederMale,
	VisitorBreederFemale,
	VisitorScientistMale,
	VisitorScientistFemale,
	VisitorHiker,
	VisitorParasolLady,
	VisitorRoughneck,
	VisitorNurse,
	VisitorPreschoolerMale,
	VisitorPreschoolerFemale,
}

type ShopType string

const (
	ShopRaffle  ShopType = "RAFFLE"
	ShopFlorist ShopType = "FLORIST"
	ShopSalon   ShopType = "SALON"
	ShopAntique ShopType = "ANTIQUE"
	ShopDojo    ShopType = "DOJO"
	ShopCafe    ShopType = "CAFE"
	ShopMarket  ShopType = "MARKET"
)

var ShopTypes = []ShopType{ShopRaffle, ShopFlorist, ShopSalon, ShopAntique, ShopDojo, ShopCafe, ShopMarket}

// GameVersion is one language edition of Black, White, Black 2 or White 2
type GameVersion string

var GameVersions = []GameVersion{
	"BLACK_JAPANESE", "BLACK_ENGLISH", "BLACK_FRENCH", "BLACK_ITALIAN", "BLACK_GERMAN", "BLACK_SPANISH", "BLACK_KOREAN",
	"WHITE_JAPANESE", "WHITE_ENGLISH", "WHITE_FRENCH", "WHITE_ITALIAN", "WHITE_GERMAN", "WHITE_SPANISH", "WHITE_KOREAN",
	"BLACK_2_JAPANESE", "BLACK_2_ENGLISH", "BLACK_2_FRENCH", "BLACK_2_ITALIAN", "BLACK_2_GERMAN", "BLACK_2_SPANISH", "BLACK_2_KOREAN",
	"WHITE_2_JAPANESE", "WHITE_2_ENGLISH", "WHITE_2_FRENCH", "WHITE_2_ITALIAN", "WHITE_2_GERMAN", "WHITE_2_SPANISH", "WHITE_2_KOREAN",
}

const GameVersionBlackEnglish GameVersion = "BLACK_ENGLISH"

// DLCType is the category passed to the DLC listing
type DLCType string

const (
	DLCCGear   DLCType = "CGEAR"
	DLCCGear2  DLCType = "CGEAR2"
	DLCDexSkin DLCType = "ZUKAN"
	DLCMusical DLCType = "MUSICAL"
)

// NoDLC is the selection value for "nothing selected"
const NoDLC = "none"

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func (g Gender) Valid() bool { return contains(Genders, g) }
func (a Animation) Valid() bool { return contains(Animations, a) }
func (v VisitorType) Valid() bool { return contains(VisitorTypes, v) }
func (s ShopType) Valid() bool { return contains(ShopTypes, s) }
func (g GameVersion) Valid() bool { return contains(GameVersions, g) }

// Title turns an enum key into words, e.g. ACE_TRAINER_MALE -> Ace Trainer Male
func Title(key string) string {
	words := strings.Split(strings.ToLower(key), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func (g Gender) String() string { return Title(string(g)) }
func (a Animation) String() string { return Title(string(a)) }
func (v VisitorType) String() string { return Title(string(v)) }
func (s ShopType) String() string { return Title(string(s)) }
func (g GameVersion) String() string { return Title(string(g)) }
