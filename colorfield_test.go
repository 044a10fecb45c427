package colorfield

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-colorfield/pkg/field"
	"github.com/goliatone/go-colorfield/pkg/store"
)

func TestRenderSelect(t *testing.T) {
	settings := Settings{
		"blog.post.highlight": {ColorType: "TEXT"},
	}

	out, err := RenderSelect(context.Background(), settings, "blog", "post", "highlight", "text-danger")
	if err != nil {
		t.Fatalf("render select: %v", err)
	}

	if !strings.Contains(out, `<select name="highlight"`) {
		t.Fatalf("missing select element:\n%s", out)
	}
	if !strings.Contains(out, `value="text-danger" class="bg-danger-200 text-danger" selected`) {
		t.Fatalf("selected text-class option missing:\n%s", out)
	}
}

func TestRenderSelect_WithSource(t *testing.T) {
	source := store.NewMemory(store.Record{Name: "Brand", Background: "bg-brand", Text: "text-brand"})

	out, err := RenderSelect(context.Background(), nil, "blog", "post", "highlight", "",
		field.WithSource(source))
	if err != nil {
		t.Fatalf("render select: %v", err)
	}
	if !strings.Contains(out, `value="bg-brand"`) {
		t.Fatalf("lookup record missing from markup:\n%s", out)
	}
}

func TestBootstrapCopy(t *testing.T) {
	p := Bootstrap()
	p.Colors[0].Name = "mutated"

	if Bootstrap().Colors[0].Name == "mutated" {
		t.Fatalf("Bootstrap must hand out independent copies")
	}
}
