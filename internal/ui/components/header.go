package components

import "github.com/localstack/dockhand/internal/ui/styles"

func markLine1() string {
	return "  " +
		styles.AccentDark.Render("▗") +
		styles.AccentLight.Render("▟███▙") +
		"  "
}

func markLine2() string {
	return " " +
		styles.AccentMid.Render("≈") +
		styles.AccentLight.Render("▜█▙█▛") +
		styles.AccentMid.Render("≈") +
		" "
}

func markLine3() string {
	return "   " +
		styles.AccentDark.Render("▔▔▔") +
		"   "
}

type Header struct {
	version string
}

func NewHeader(version string) Header {
	return Header{version: version}
}

func (h Header) View() string {
	title := styles.Title.Render("dockhand")
	version := styles.Version.Render(h.version)

	return "\n" + markLine1() + " " + title + "\n" +
		markLine2() + " " + version + "\n" +
		markLine3() + "\n"
}
