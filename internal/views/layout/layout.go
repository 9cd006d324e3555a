package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"pedietcalc/internal/views/components"
	"pedietcalc/internal/views/theme"
)

// HTMXScript is the htmx build the pages load.
const HTMXScript = "https://unpkg.com/htmx.org@2.0.4"

// Page renders the HTML document shell around content.
func Page(title string, th theme.WorkspaceTheme, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := components.NewWriter(w)
		hw.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.Raw("<title>")
		hw.Text(title)
		hw.Raw("</title>")
		hw.Raw(`<link rel="stylesheet" href="/assets/styles.css">`)
		hw.Raw("<script")
		hw.Attr("src", HTMXScript)
		hw.Raw("></script></head><body")
		hw.Attr("class", th.BodyClass)
		hw.Attr("data-theme", th.Key)
		hw.Raw(`><main`)
		hw.Attr("class", mainClass(th))
		hw.Raw(">")
		hw.Render(ctx, content)
		hw.Raw("</main></body></html>")
		return hw.Err()
	})
}

func mainClass(th theme.WorkspaceTheme) string {
	if th.ShellClass == "" {
		return "app"
	}
	return th.ShellClass
}
