// Package view applies choreo visual state to Ebitengine draws.
//
// [DrawOptions] turns a [choreo.State] into ebiten.DrawImageOptions, [Sprite]
// is a ready-made [choreo.Target] for an image, and [Game] is a minimal
// ebiten.Game that advances one Animator per sprite each tick.
//
//	game := view.NewGame(640, 480)
//	anim := game.Add(view.NewSprite(img, 320, 240))
//	anim.Play(preset.Sequence())
//	view.Run(game, view.RunConfig{Title: "demo", Width: 640, Height: 480})
package view
