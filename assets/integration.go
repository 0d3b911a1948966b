package assets

import (
	_ "embed"
)

// ZshIntegration contains the embedded zsh widget script.
//
//go:embed integration/aish.zsh
var ZshIntegration []byte

// BashIntegration contains the embedded bash widget script.
//
//go:embed integration/aish.bash
var BashIntegration []byte

// FishIntegration contains the embedded fish widget script.
//
//go:embed integration/aish.fish
var FishIntegration []byte
