// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// OceanVertexShader places the displaced surface vertex.
//
//go:embed ocean.vert
var OceanVertexShader string

// OceanFragmentShader blends depth and surface colors by elevation.
//
//go:embed ocean.frag
var OceanFragmentShader string
