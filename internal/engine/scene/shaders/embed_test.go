package shaders

import (
	"regexp"
	"strings"
	"testing"
)

var uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*;`)

func TestDeclaredUniformsAreRead(t *testing.T) {
	sources := map[string]string{
		"ocean.vert": OceanVertexShader,
		"ocean.frag": OceanFragmentShader,
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			if !strings.Contains(src, "void main()") {
				t.Fatal("no main function")
			}
			body := uniformDecl.ReplaceAllString(src, "")
			for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
				word := regexp.MustCompile(`\b` + m[1] + `\b`)
				if !word.MatchString(body) {
					t.Errorf("uniform %s is declared but never read", m[1])
				}
			}
		})
	}
}

func TestFragmentUniforms(t *testing.T) {
	var got []string
	for _, m := range uniformDecl.FindAllStringSubmatch(OceanFragmentShader, -1) {
		got = append(got, m[1])
	}
	want := []string{"uDepthColor", "uSurfaceColor", "uColorOffset", "uColorMultiplier"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("fragment uniforms %v, want %v", got, want)
	}
}
