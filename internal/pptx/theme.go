package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/gnemet/slidextract/internal/model"
)

// colorSchemeRoles is the fixed set of theme1.xml color-scheme child
// element names, matched by local name.
var colorSchemeRoles = map[string]bool{
	"dk1": true, "lt1": true, "dk2": true, "lt2": true,
	"accent1": true, "accent2": true, "accent3": true,
	"accent4": true, "accent5": true, "accent6": true,
	"hlink": true, "folHlink": true,
}

// extractThemes reads every ppt/theme/theme{n}.xml part into a Theme
// record: colors as "{role}: #RRGGBB" and fonts as "Major: {typeface}"
// / "Minor: {typeface}", per spec.md §3.
func extractThemes(zr *zip.Reader) []model.Theme {
	files := matchingFilesSorted(zr, "ppt/theme/theme", ".xml")
	var themes []model.Theme
	for _, f := range files {
		rc, err := f.Open()
		if err != nil {
			continue
		}
		theme := parseThemeXML(rc, f.Name)
		rc.Close()
		themes = append(themes, theme)
	}
	return themes
}

func parseThemeXML(r io.Reader, name string) model.Theme {
	theme := model.Theme{Name: name}
	dec := xml.NewDecoder(r)
	dec.Strict = false

	var inColorScheme bool
	var currentColorRole string
	var currentFontRole string
	var majorFont, minorFont string

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch {
			case el.Name.Local == "clrScheme":
				inColorScheme = true
			case el.Name.Local == "majorFont":
				currentFontRole = "major"
			case el.Name.Local == "minorFont":
				currentFontRole = "minor"
			case inColorScheme && colorSchemeRoles[el.Name.Local]:
				currentColorRole = el.Name.Local
			case (el.Name.Local == "srgbClr" || el.Name.Local == "sysClr") && currentColorRole != "":
				// sysClr's val is a system color name; its hex value is lastClr.
				hexAttr := "val"
				if el.Name.Local == "sysClr" {
					hexAttr = "lastClr"
				}
				for _, a := range el.Attr {
					if a.Name.Local == hexAttr {
						theme.Colors = append(theme.Colors, fmt.Sprintf("%s: #%s", currentColorRole, strings.ToUpper(a.Value)))
					}
				}
				currentColorRole = ""
			case el.Name.Local == "latin" && currentFontRole != "":
				for _, a := range el.Attr {
					if a.Name.Local == "typeface" && a.Value != "" {
						if currentFontRole == "major" {
							majorFont = a.Value
						} else {
							minorFont = a.Value
						}
					}
				}
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "clrScheme":
				inColorScheme = false
				currentColorRole = ""
			case "majorFont", "minorFont":
				currentFontRole = ""
			}
		}
	}

	if majorFont != "" {
		theme.Fonts = append(theme.Fonts, fmt.Sprintf("Major: %s", majorFont))
	}
	if minorFont != "" {
		theme.Fonts = append(theme.Fonts, fmt.Sprintf("Minor: %s", minorFont))
	}
	return theme
}

// extractMasterSlideNames reads ppt/slideMasters/slideMaster{n}.xml
// parts and returns their cSld name attributes (or a positional
// fallback when unnamed).
func extractMasterSlideNames(zr *zip.Reader) []string {
	files := matchingFilesSorted(zr, "ppt/slideMasters/slideMaster", ".xml")
	var names []string
	for i, f := range files {
		rc, err := f.Open()
		if err != nil {
			continue
		}
		name := readCSldName(rc)
		rc.Close()
		if name == "" {
			name = fmt.Sprintf("Master %d", i+1)
		}
		names = append(names, name)
	}
	return names
}

func readCSldName(r io.Reader) string {
	dec := xml.NewDecoder(r)
	dec.Strict = false
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		el, ok := tok.(xml.StartElement)
		if !ok || el.Name.Local != "cSld" {
			continue
		}
		for _, a := range el.Attr {
			if a.Name.Local == "name" {
				return a.Value
			}
		}
	}
	return ""
}

// matchingFilesSorted returns zip entries whose name has the given
// prefix/suffix, sorted by the embedded numeric index ascending.
func matchingFilesSorted(zr *zip.Reader, prefix, suffix string) []*zip.File {
	var files []*zip.File
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, prefix) && strings.HasSuffix(f.Name, suffix) {
			files = append(files, f)
		}
	}
	sort.Slice(files, func(i, j int) bool {
		return numericIndex(files[i].Name, prefix, suffix) < numericIndex(files[j].Name, prefix, suffix)
	})
	return files
}

func numericIndex(name, prefix, suffix string) int {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(name, prefix), suffix)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0
	}
	return n
}
