package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	out := Render("# Blood Donation Camp\n\nWe collected **150** units.")
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<strong>150</strong>")

	assert.Empty(t, Render("   "))
}

func TestRenderStripsScripts(t *testing.T) {
	out := Render("hello <script>alert(1)</script> [x](javascript:alert(1))")
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "javascript:")
	assert.Contains(t, out, "hello")
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "Hi there", Plain("  <b>Hi</b> there<script>x()</script> "))
	assert.Equal(t, "Tom & Jerry", Plain("Tom & Jerry"))
	assert.Equal(t, "", Plain("<img src=x onerror=alert(1)>"))
}
