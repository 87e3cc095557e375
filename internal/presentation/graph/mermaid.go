package graph

import (
	"fmt"
	"strings"

	"github.com/hadronized/hop.kak/pkg/domain"
)

// Overlay marks the path of keys already typed.
type Overlay struct {
	Typed string
}

// GenerateMermaid draws the label trie as a Mermaid flowchart.
// Shapes:
// - Root: ((Circle))
// - Shared prefix: [Rectangle]
// - Label: [/Parallelogram/], annotated with the selection rank
func GenerateMermaid(labels []domain.Label, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString("    root((\"start\"))\n")

	declared := map[string]bool{"root": true}
	for i, l := range labels {
		parent := "root"
		for depth := 1; depth <= len(l); depth++ {
			prefix := l[:depth]
			id := mermaidID(prefix)
			if !declared[id] {
				declared[id] = true
				if depth == len(l) {
					sb.WriteString(fmt.Sprintf("    %s[/\"%s #%d\"/]\n", id, escape(prefix.String()), i))
				} else {
					sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, escape(prefix.String())))
				}
				sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", parent, escape(string(l[depth-1])), id))
			}
			parent = id
		}
	}

	if overlay != nil && overlay.Typed != "" {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast regardless of theme.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		typed := domain.Label(overlay.Typed)
		sb.WriteString("    class root visited;\n")
		for depth := 1; depth <= len(typed); depth++ {
			id := mermaidID(typed[:depth])
			if !declared[id] {
				break
			}
			class := "visited"
			if depth == len(typed) {
				class = "current"
			}
			sb.WriteString(fmt.Sprintf("    class %s %s;\n", id, class))
		}
	}

	return sb.String()
}

// mermaidID encodes a prefix with code points so any keyset symbol is a valid id.
func mermaidID(prefix domain.Label) string {
	var sb strings.Builder
	sb.WriteString("n")
	for _, r := range prefix {
		sb.WriteString(fmt.Sprintf("_%x", r))
	}
	return sb.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
