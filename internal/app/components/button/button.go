package button

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
	"github.com/a-h/templ"
)

type Variant string
type Size string
type Type string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
	VariantOutline     Variant = "outline"
	VariantGhost       Variant = "ghost"
	VariantLink        Variant = "link"
)

const (
	SizeDefault Size = "default"
	SizeSm      Size = "sm"
	SizeLg      Size = "lg"
)

const (
	TypeButton Type = "button"
	TypeSubmit Type = "submit"
)

type Props struct {
	ID         string
	Label      string
	Class      string
	Href       string
	Variant    Variant
	Size       Size
	Type       Type
	FullWidth  bool
	Disabled   bool
	Attributes templ.Attributes
}

const baseClasses = "inline-flex items-center justify-center rounded p-2 font-medium transition-colors focus-visible:outline-none disabled:opacity-50 disabled:pointer-events-none"

var variantClasses = map[Variant]string{
	VariantDefault:     "bg-indigo-600 text-white hover:bg-indigo-700",
	VariantDestructive: "bg-destructive text-white hover:bg-destructive/90",
	VariantOutline:     "border border-gray-300 bg-white hover:bg-gray-50",
	VariantGhost:       "hover:bg-indigo-600",
	VariantLink:        "text-indigo-600 underline-offset-4 hover:underline",
}

var sizeClasses = map[Size]string{
	SizeDefault: "h-9 px-4",
	SizeSm:      "h-8 px-3 text-sm",
	SizeLg:      "h-10 px-6",
}

// Button renders an anchor when Href is set and a button otherwise. Children
// passed through templ.WithChildren are rendered after Label.
func Button(props ...Props) templ.Component {
	var p Props
	if len(props) > 0 {
		p = props[0]
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tag := "button"
		if p.Href != "" {
			tag = "a"
		}
		if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
			return err
		}
		if p.ID != "" {
			fmt.Fprintf(w, ` id="%s"`, templ.EscapeString(p.ID))
		}
		if p.Href != "" {
			fmt.Fprintf(w, ` href="%s"`, templ.EscapeString(p.Href))
		} else {
			fmt.Fprintf(w, ` type="%s"`, templ.EscapeString(string(p.buttonType())))
		}
		if p.Disabled && p.Href == "" {
			io.WriteString(w, ` disabled`)
		}
		fmt.Fprintf(w, ` class="%s"`, templ.EscapeString(p.classes()))
		if err := writeAttributes(w, p.Attributes); err != nil {
			return err
		}
		io.WriteString(w, ">")
		if p.Label != "" {
			io.WriteString(w, templ.EscapeString(p.Label))
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "</%s>", tag)
		return err
	})
}

func (p Props) buttonType() Type {
	if p.Type == "" {
		return TypeButton
	}
	return p.Type
}

func (p Props) classes() string {
	variant := p.Variant
	if variant == "" {
		variant = VariantDefault
	}
	size := p.Size
	if size == "" {
		size = SizeDefault
	}
	width := ""
	if p.FullWidth {
		width = "w-full"
	}
	return twmerge.Merge(baseClasses, variantClasses[variant], sizeClasses[size], width, p.Class)
}

func writeAttributes(w io.Writer, attrs templ.Attributes) error {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case string:
			if _, err := fmt.Fprintf(w, ` %s="%s"`, templ.EscapeString(k), templ.EscapeString(v)); err != nil {
				return err
			}
		case bool:
			if v {
				if _, err := fmt.Fprintf(w, ` %s`, templ.EscapeString(k)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
