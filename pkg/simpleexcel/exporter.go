package simpleexcel

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// defaultSheet is the sheet every new excelize workbook starts with.
const defaultSheet = "Sheet1"

// ReportTemplate is the YAML layout of a workbook.
type ReportTemplate struct {
	Sheets []SheetTemplate `yaml:"sheets"`
}

type SheetTemplate struct {
	Name     string          `yaml:"name"`
	Sections []SectionConfig `yaml:"sections"`
}

// SectionConfig is a block of rows bound to data by ID. Sections of a sheet
// are stacked top to bottom, GapRows apart.
type SectionConfig struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	ShowHeader  bool           `yaml:"show_header"`
	FreezeRows  bool           `yaml:"freeze_header"`
	AutoFilter  bool           `yaml:"auto_filter"`
	GapRows     int            `yaml:"gap_rows"`
	TitleStyle  *StyleTemplate `yaml:"title_style"`
	HeaderStyle *StyleTemplate `yaml:"header_style"`
	Columns     []ColumnConfig `yaml:"columns"`
}

// ColumnConfig maps a struct field or map key to one column. NumFmt is an
// excelize built-in number format id; 0 keeps the General format.
type ColumnConfig struct {
	FieldName string  `yaml:"field_name"`
	Header    string  `yaml:"header"`
	Width     float64 `yaml:"width"`
	NumFmt    int     `yaml:"num_fmt"`
}

type StyleTemplate struct {
	Font *FontTemplate `yaml:"font"`
	Fill *FillTemplate `yaml:"fill"`
}

type FontTemplate struct {
	Bold  bool   `yaml:"bold"`
	Color string `yaml:"color"` // hex, "#" optional
}

type FillTemplate struct {
	Color string `yaml:"color"`
}

// DataExporter renders a ReportTemplate with data bound per section.
type DataExporter struct {
	template ReportTemplate
	data     map[string]interface{}
}

// NewDataExporter wraps an already built template.
func NewDataExporter(tmpl ReportTemplate) (*DataExporter, error) {
	if len(tmpl.Sheets) == 0 {
		return nil, errors.New("template declares no sheets")
	}
	for _, sh := range tmpl.Sheets {
		if sh.Name == "" {
			return nil, errors.New("template has a sheet without a name")
		}
	}
	return &DataExporter{template: tmpl, data: make(map[string]interface{})}, nil
}

// NewDataExporterFromYAML parses a layout held in memory, such as an embedded file.
func NewDataExporterFromYAML(layout []byte) (*DataExporter, error) {
	var tmpl ReportTemplate
	if err := yaml.Unmarshal(layout, &tmpl); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return NewDataExporter(tmpl)
}

func NewDataExporterFromYamlFile(path string) (*DataExporter, error) {
	layout, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yaml file: %w", err)
	}
	return NewDataExporterFromYAML(layout)
}

// BindSectionData attaches a slice to the section with the given ID.
// Unbound sections render their title and header only.
func (e *DataExporter) BindSectionData(id string, data interface{}) *DataExporter {
	e.data[id] = data
	return e
}

// BuildExcel renders the workbook. The caller closes the returned file.
func (e *DataExporter) BuildExcel() (*excelize.File, error) {
	f := excelize.NewFile()
	for i, sh := range e.template.Sheets {
		if err := addSheet(f, i, sh.Name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %q: %w", sh.Name, err)
		}

		row := 1
		for _, sec := range sh.Sections {
			next, err := e.renderSection(f, sh.Name, row, sec)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("render section %q: %w", sec.ID, err)
			}
			row = next + sec.GapRows
		}
	}
	return f, nil
}

// ExportToExcel writes the workbook to path.
func (e *DataExporter) ExportToExcel(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := e.BuildExcel()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// ToBytes returns the encoded workbook.
func (e *DataExporter) ToBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := e.ToWriter(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *DataExporter) ToWriter(w io.Writer) error {
	f, err := e.BuildExcel()
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}

func addSheet(f *excelize.File, index int, name string) error {
	if index == 0 {
		if name == defaultSheet {
			return nil
		}
		return f.SetSheetName(defaultSheet, name)
	}
	_, err := f.NewSheet(name)
	return err
}

// renderSection writes sec starting at row and returns the first free row below it.
func (e *DataExporter) renderSection(f *excelize.File, sheet string, row int, sec SectionConfig) (int, error) {
	lastCol := len(sec.Columns)
	if lastCol == 0 {
		return row, nil
	}

	if sec.Title != "" {
		styleID, err := createStyle(f, sec.TitleStyle, 0)
		if err != nil {
			return row, err
		}
		first := cellName(1, row)
		last := cellName(lastCol, row)
		if err := f.SetCellStr(sheet, first, sec.Title); err != nil {
			return row, err
		}
		if lastCol > 1 {
			if err := f.MergeCell(sheet, first, last); err != nil {
				return row, err
			}
		}
		if err := f.SetCellStyle(sheet, first, last, styleID); err != nil {
			return row, err
		}
		row++
	}

	headerRow := 0
	if sec.ShowHeader {
		headerRow = row
		styleID, err := createStyle(f, sec.HeaderStyle, 0)
		if err != nil {
			return row, err
		}
		for i, col := range sec.Columns {
			if err := f.SetCellStr(sheet, cellName(i+1, row), col.Header); err != nil {
				return row, err
			}
		}
		if err := f.SetCellStyle(sheet, cellName(1, row), cellName(lastCol, row), styleID); err != nil {
			return row, err
		}
		row++
	}

	for i, col := range sec.Columns {
		if col.Width <= 0 {
			continue
		}
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, name, name, col.Width); err != nil {
			return row, err
		}
	}

	firstData := row
	items := reflect.ValueOf(e.data[sec.ID])
	if items.Kind() == reflect.Slice || items.Kind() == reflect.Array {
		for i := 0; i < items.Len(); i++ {
			values := make([]interface{}, len(sec.Columns))
			for j, col := range sec.Columns {
				values[j] = fieldValue(items.Index(i), col.FieldName)
			}
			if err := f.SetSheetRow(sheet, cellName(1, row), &values); err != nil {
				return row, fmt.Errorf("write row %d: %w", i+1, err)
			}
			row++
		}
	}

	if row > firstData {
		for i, col := range sec.Columns {
			if col.NumFmt == 0 {
				continue
			}
			styleID, err := createStyle(f, nil, col.NumFmt)
			if err != nil {
				return row, err
			}
			if err := f.SetCellStyle(sheet, cellName(i+1, firstData), cellName(i+1, row-1), styleID); err != nil {
				return row, err
			}
		}
	}

	if headerRow > 0 && sec.FreezeRows {
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      headerRow,
			TopLeftCell: cellName(1, headerRow+1),
			ActivePane:  "bottomLeft",
		}); err != nil {
			return row, err
		}
	}
	if headerRow > 0 && sec.AutoFilter {
		ref := cellName(1, headerRow) + ":" + cellName(lastCol, max(row-1, headerRow))
		if err := f.AutoFilter(sheet, ref, nil); err != nil {
			return row, err
		}
	}
	return row, nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// fieldValue reads a struct field or string-keyed map entry, following
// pointers and interfaces. Missing values render as an empty cell.
func fieldValue(v reflect.Value, name string) interface{} {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		if fv := v.FieldByName(name); fv.IsValid() && fv.CanInterface() {
			return fv.Interface()
		}
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return ""
		}
		if mv := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key())); mv.IsValid() {
			return mv.Interface()
		}
	}
	return ""
}

func createStyle(f *excelize.File, tmpl *StyleTemplate, numFmt int) (int, error) {
	style := &excelize.Style{NumFmt: numFmt}
	if tmpl != nil {
		if tmpl.Font != nil {
			style.Font = &excelize.Font{Bold: tmpl.Font.Bold, Color: hexColor(tmpl.Font.Color)}
		}
		if tmpl.Fill != nil && tmpl.Fill.Color != "" {
			style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hexColor(tmpl.Fill.Color)}}
		}
	}
	id, err := f.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("create style: %w", err)
	}
	return id, nil
}

func hexColor(s string) string {
	return strings.TrimPrefix(s, "#")
}
