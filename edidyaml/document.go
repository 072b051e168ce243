// Package edidyaml loads a YAML document into a validated edid.Description.
// It is the "higher-level tool" spec.md §1 describes as the thing that
// loads a document into the typed description and hands the result to
// edid.Encode; the edid core itself never parses YAML or touches a
// filesystem.
package edidyaml

import (
	"fmt"
	"io"

	"github.com/ardnew/edidgen/edid"
	"github.com/ardnew/edidgen/internal/xlog"
	"gopkg.in/yaml.v3"
)

// Document is the root of the YAML schema accepted by Load.
type Document struct {
	Release      string             `yaml:"release"`
	Manufacturer string             `yaml:"manufacturer"`
	ProductCode  uint16             `yaml:"product_code"`
	Serial       *uint32            `yaml:"serial,omitempty"`
	Date         DateDoc            `yaml:"date"`
	VideoInput   VideoInputDoc      `yaml:"video_input"`
	DisplaySize  DisplaySizeDoc     `yaml:"display_size"`
	Gamma        string             `yaml:"gamma"` // "undefined" or a decimal like "2.20"
	Features     FeatureSupportDoc  `yaml:"features"`
	Chromaticity ChromaticityDoc    `yaml:"chromaticity"`
	Established  []string           `yaml:"established_timings"`
	Standard     []StandardTimingDoc `yaml:"standard_timings,omitempty"`
	Descriptors  []DescriptorDoc    `yaml:"descriptors"`
	Extension    *CtaExtensionDoc   `yaml:"extension,omitempty"`
}

// DateDoc is the YAML form of edid.Date.
type DateDoc struct {
	Year      uint16 `yaml:"year,omitempty"`
	Week      uint8  `yaml:"week,omitempty"`
	ModelYear uint16 `yaml:"model_year,omitempty"`
}

// Load parses a YAML document from r and builds the corresponding
// edid.Description. Construction errors surface as the edid package's own
// error types, unwrapped, so callers can inspect them with errors.As the
// same way they would for a description built directly through the edid
// API.
func Load(r io.Reader) (edid.Description, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return edid.Description{}, fmt.Errorf("edidyaml: parse: %w", err)
	}
	xlog.Debug(xlog.ComponentLoader, "parsed document", "manufacturer", doc.Manufacturer, "product_code", doc.ProductCode)
	return doc.Build()
}

// Build converts the parsed document into a validated edid.Description.
func (doc Document) Build() (edid.Description, error) {
	release, err := parseRelease(doc.Release)
	if err != nil {
		return edid.Description{}, err
	}

	manufacturer, err := edid.NewManufacturerId(doc.Manufacturer)
	if err != nil {
		return edid.Description{}, err
	}

	date, err := doc.Date.build()
	if err != nil {
		return edid.Description{}, err
	}

	videoInput, err := doc.VideoInput.build()
	if err != nil {
		return edid.Description{}, err
	}

	displaySize, err := doc.DisplaySize.build()
	if err != nil {
		return edid.Description{}, err
	}

	gamma, err := parseGamma(doc.Gamma)
	if err != nil {
		return edid.Description{}, err
	}

	features, err := doc.Features.build()
	if err != nil {
		return edid.Description{}, err
	}

	chromaticity, err := doc.Chromaticity.build()
	if err != nil {
		return edid.Description{}, err
	}

	established, err := buildEstablishedTimings(doc.Established)
	if err != nil {
		return edid.Description{}, err
	}

	var standardEntries []edid.StandardTiming
	for _, s := range doc.Standard {
		st, err := s.build()
		if err != nil {
			return edid.Description{}, err
		}
		standardEntries = append(standardEntries, st)
	}
	standard, err := edid.NewStandardTimingList(standardEntries...)
	if err != nil {
		return edid.Description{}, err
	}

	var descriptorEntries []edid.Descriptor
	for _, d := range doc.Descriptors {
		descriptor, err := d.build()
		if err != nil {
			return edid.Description{}, err
		}
		descriptorEntries = append(descriptorEntries, descriptor)
	}
	descriptors, err := edid.NewDescriptorSlots(descriptorEntries...)
	if err != nil {
		return edid.Description{}, err
	}

	description := edid.Description{
		Release:            release,
		Manufacturer:       manufacturer,
		ProductCode:        edid.ProductCode(doc.ProductCode),
		Date:               date,
		VideoInput:         videoInput,
		DisplaySize:        displaySize,
		Gamma:              gamma,
		Features:           features,
		Chromaticity:       chromaticity,
		EstablishedTimings: established,
		StandardTimings:    standard,
		Descriptors:        descriptors,
	}
	if doc.Serial != nil {
		description.HasSerial = true
		description.Serial = edid.SerialNumber(*doc.Serial)
	}

	if doc.Extension != nil {
		ext, err := doc.Extension.build()
		if err != nil {
			return edid.Description{}, err
		}
		description.Extension = &ext
	}

	return description, nil
}

func parseRelease(s string) (edid.EdidRelease, error) {
	switch s {
	case "R3", "r3", "1.3":
		return edid.ReleaseR3, nil
	case "R4", "r4", "1.4":
		return edid.ReleaseR4, nil
	default:
		return 0, &edid.InvalidFieldError{Field: "release", Reason: fmt.Sprintf("unrecognized release %q, want R3 or R4", s)}
	}
}

func parseGamma(s string) (edid.Gamma, error) {
	if s == "" || s == "undefined" {
		return edid.UndefinedGamma(), nil
	}
	var value float64
	if _, err := fmt.Sscanf(s, "%f", &value); err != nil {
		return edid.Gamma{}, &edid.InvalidFieldError{Field: "gamma", Reason: fmt.Sprintf("cannot parse %q as a decimal", s)}
	}
	return edid.NewGamma(value)
}

func (d DateDoc) build() (edid.Date, error) {
	if d.ModelYear != 0 {
		return edid.NewDateModelYear(d.ModelYear)
	}
	if d.Week != 0 {
		return edid.NewDateWithWeek(d.Year, d.Week)
	}
	return edid.NewDateUnspecified(d.Year)
}

func buildEstablishedTimings(names []string) (edid.EstablishedTimings, error) {
	var modes []edid.EstablishedTiming
	for _, name := range names {
		m, ok := establishedTimingsByName[name]
		if !ok {
			return edid.EstablishedTimings{}, &edid.InvalidFieldError{Field: "established_timings", Reason: fmt.Sprintf("unrecognized timing %q", name)}
		}
		modes = append(modes, m)
	}
	return edid.NewEstablishedTimings(modes...)
}

var establishedTimingsByName = map[string]edid.EstablishedTiming{
	"800x600@60Hz":         edid.Timing800x600At60Hz,
	"800x600@56Hz":         edid.Timing800x600At56Hz,
	"640x480@75Hz":         edid.Timing640x480At75Hz,
	"640x480@72Hz":         edid.Timing640x480At72Hz,
	"640x480@67Hz":         edid.Timing640x480At67Hz,
	"640x480@60Hz":         edid.Timing640x480At60Hz,
	"720x400@88Hz":         edid.Timing720x400At88Hz,
	"720x400@70Hz":         edid.Timing720x400At70Hz,
	"1280x1024@75Hz":       edid.Timing1280x1024At75Hz,
	"1024x768@75Hz":        edid.Timing1024x768At75Hz,
	"1024x768@70Hz":        edid.Timing1024x768At70Hz,
	"1024x768@60Hz":        edid.Timing1024x768At60Hz,
	"1024x768@87HzInterlaced": edid.Timing1024x768At87HzInterlaced,
	"832x624@75Hz":         edid.Timing832x624At75Hz,
	"800x600@75Hz":         edid.Timing800x600At75Hz,
	"800x600@72Hz":         edid.Timing800x600At72Hz,
	"1152x870@75Hz":        edid.Timing1152x870At75Hz,
}
