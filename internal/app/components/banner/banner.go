package banner

import (
	"context"
	"fmt"
	"io"

	"github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
	"github.com/a-h/templ"
)

type BannerType string

const (
	BannerError   BannerType = "error"
	BannerSuccess BannerType = "success"
	BannerInfo    BannerType = "info"
)

type BannerProps struct {
	ID          string
	Type        BannerType
	Message     string
	Description string
	Dismissable bool
	Class       string
}

var typeClasses = map[BannerType]string{
	BannerError:   "border-red-300 bg-red-50 text-red-800",
	BannerSuccess: "border-green-300 bg-green-50 text-green-800",
	BannerInfo:    "border-indigo-300 bg-indigo-50 text-indigo-800",
}

// Banner renders a blocking notice. An empty Message renders nothing.
func Banner(props BannerProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if props.Message == "" {
			return nil
		}
		kind := props.Type
		if kind == "" {
			kind = BannerInfo
		}
		class := twmerge.Merge("mb-4 rounded border p-3 text-sm", typeClasses[kind], props.Class)

		io.WriteString(w, "<div")
		if props.ID != "" {
			fmt.Fprintf(w, ` id="%s"`, templ.EscapeString(props.ID))
		}
		fmt.Fprintf(w, ` role="alert" data-banner="%s" class="%s">`, templ.EscapeString(string(kind)), templ.EscapeString(class))
		fmt.Fprintf(w, `<p class="font-semibold">%s</p>`, templ.EscapeString(props.Message))
		if props.Description != "" {
			fmt.Fprintf(w, `<p class="mt-1">%s</p>`, templ.EscapeString(props.Description))
		}
		if props.Dismissable {
			io.WriteString(w, `<button type="button" class="mt-2 text-xs underline" onclick="this.parentElement.remove()">Cerrar</button>`)
		}
		_, err := io.WriteString(w, "</div>")
		return err
	})
}
