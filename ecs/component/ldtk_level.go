package component

import "image/color"

// LDtkLevel tags a spawned level with its iid.
type LDtkLevel struct {
	IID string
}

var LDtkLevelComponent = NewComponent[LDtkLevel]()

// LevelBackground is the level's clear color.
type LevelBackground struct {
	Color color.RGBA
}

var LevelBackgroundComponent = NewComponent[LevelBackground]()
