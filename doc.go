// Package choreo sequences declarative animations for retained-mode views.
//
// Callers compose chains of visual transitions (fade, scale, move, rotate,
// slide, spring, shake, pulse) that run one after another or side by side,
// with delays, loops and presets. choreo computes the values; the host view
// layer applies them.
//
// # Quick start
//
//	anim := choreo.NewAnimator(sprite) // sprite implements choreo.Target
//	anim.Play(choreo.NewSequence().
//		FadeOut(0.3).And().ScaleTo(1.5, 0.3).
//		Then().FadeIn(0.3).And().ScaleTo(1, 0.3).
//		Then().Loop(choreo.LoopForever()))
//
//	// each frame:
//	anim.Update(dt)
//
// # Model
//
// A [Step] describes one operation. A [Sequence] is an immutable list of
// steps; [Sequence.Then] and [Sequence.And] choose whether the next step runs
// after the previous one or with it. Steps joined with And form a single
// group that completes when every member has.
//
// An [Animator] owns the [State] of one view (opacity, scale, offset,
// rotation) and a [Timeline]. Play starts a sequence; Update moves the
// timeline, so every transition is an easing curve sampled at the current
// time (via [gween]) rather than a fire-and-forget platform animation.
// There is no global animation manager; users call Update themselves, or use
// a [Player] to drive an Animator from the wall clock.
//
// A Loop step ends a pass: it either lets the sequence continue or resets the
// State to rest and restarts from the first step after [DefaultRestartGap].
//
// Presets ([LookupPreset], [ParsePresets]) are ready-made step lists for
// entrances, exits, attention seekers and input feedback.
//
// The view subpackage renders a State with [Ebitengine]; the ecs module
// forwards lifecycle events into a [Donburi] world.
//
// [gween]: https://github.com/tanema/gween
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package choreo
