// Package sprite contains the procedural drawings placed in scenes
//
// Each sprite keeps its own animation state, driven by interval gates or scalar
// animators, and draws into a render.Canvas relative to the animation frame.
package sprite
