package model

// LevelRating is the difficulty face shown for a level.
type LevelRating uint8

const (
	RatingNA LevelRating = iota
	RatingAuto
	RatingEasy
	RatingNormal
	RatingHard
	RatingHarder
	RatingInsane
	RatingDemon
)

// String returns the rating name.
func (r LevelRating) String() string {
	switch r {
	case RatingNA:
		return "NA"
	case RatingAuto:
		return "AUTO"
	case RatingEasy:
		return "EASY"
	case RatingNormal:
		return "NORMAL"
	case RatingHard:
		return "HARD"
	case RatingHarder:
		return "HARDER"
	case RatingInsane:
		return "INSANE"
	case RatingDemon:
		return "DEMON"
	default:
		return "UNKNOWN"
	}
}

// LevelLength is the length class of a level.
type LevelLength uint8

const (
	LengthTiny LevelLength = iota
	LengthShort
	LengthMedium
	LengthLong
	LengthExtraLong
	LengthPlatformer
)

// String returns the length name.
func (l LevelLength) String() string {
	switch l {
	case LengthTiny:
		return "TINY"
	case LengthShort:
		return "SHORT"
	case LengthMedium:
		return "MEDIUM"
	case LengthLong:
		return "LONG"
	case LengthExtraLong:
		return "EXTRA_LONG"
	case LengthPlatformer:
		return "PLATFORMER"
	default:
		return "UNKNOWN"
	}
}

// ModLevel is a user's moderator badge.
type ModLevel uint8

const (
	ModNone ModLevel = iota
	ModNormal
	ModElder
)

// String returns the badge name.
func (m ModLevel) String() string {
	switch m {
	case ModNone:
		return "NONE"
	case ModNormal:
		return "NORMAL"
	case ModElder:
		return "ELDER"
	default:
		return "UNKNOWN"
	}
}

// IconType is the game mode a user's displayed icon belongs to.
type IconType uint8

const (
	IconCube IconType = iota
	IconShip
	IconBall
	IconUFO
	IconWave
	IconRobot
	IconSpider
	IconSwing
	IconJetpack
)

// String returns the icon type name.
func (i IconType) String() string {
	switch i {
	case IconCube:
		return "CUBE"
	case IconShip:
		return "SHIP"
	case IconBall:
		return "BALL"
	case IconUFO:
		return "UFO"
	case IconWave:
		return "WAVE"
	case IconRobot:
		return "ROBOT"
	case IconSpider:
		return "SPIDER"
	case IconSwing:
		return "SWING"
	case IconJetpack:
		return "JETPACK"
	default:
		return "UNKNOWN"
	}
}
