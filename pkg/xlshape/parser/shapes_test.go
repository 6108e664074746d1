package parser

import (
	"testing"

	"github.com/ukaji3/xlshape-go/pkg/xlshape/models"
)

const testDrawingXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<xdr:wsDr xmlns:xdr="http://schemas.openxmlformats.org/drawingml/2006/spreadsheetDrawing"
          xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
          xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006">
  <xdr:twoCellAnchor>
    <xdr:from><xdr:col>1</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>1</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:from>
    <xdr:to><xdr:col>4</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>6</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:to>
    <xdr:sp macro="" textlink="">
      <xdr:nvSpPr><xdr:cNvPr id="2" name="Box"/><xdr:cNvSpPr/></xdr:nvSpPr>
      <xdr:spPr>
        <a:xfrm rot="5400000"><a:off x="95250" y="190500"/><a:ext cx="1905000" cy="762000"/></a:xfrm>
        <a:prstGeom prst="roundRect"><a:avLst/></a:prstGeom>
      </xdr:spPr>
      <xdr:style>
        <a:lnRef idx="2"><a:schemeClr val="accent1"><a:shade val="50000"/></a:schemeClr></a:lnRef>
        <a:fillRef idx="1"><a:schemeClr val="accent1"/></a:fillRef>
        <a:effectRef idx="0"><a:schemeClr val="accent1"/></a:effectRef>
        <a:fontRef idx="minor"><a:schemeClr val="lt1"/></a:fontRef>
      </xdr:style>
      <xdr:txBody>
        <a:bodyPr rtlCol="0" anchor="ctr"/>
        <a:lstStyle/>
        <a:p>
          <a:pPr algn="ctr"/>
          <a:r><a:rPr lang="en-US" sz="1100" b="1"><a:latin typeface="Calibri"/></a:rPr><a:t>Start </a:t></a:r>
          <a:r><a:rPr lang="en-US" i="0"><a:latin typeface="Arial"/></a:rPr><a:t>here</a:t></a:r>
        </a:p>
      </xdr:txBody>
    </xdr:sp>
    <xdr:clientData/>
  </xdr:twoCellAnchor>
  <xdr:oneCellAnchor>
    <xdr:from><xdr:col>0</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>0</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:from>
    <xdr:ext cx="100" cy="100"/>
    <xdr:grpSp>
      <xdr:nvGrpSpPr><xdr:cNvPr id="3" name="Group"/><xdr:cNvGrpSpPr/></xdr:nvGrpSpPr>
      <xdr:grpSpPr/>
      <xdr:sp><xdr:nvSpPr><xdr:cNvPr id="4" name="Inner"/><xdr:cNvSpPr/></xdr:nvSpPr><xdr:spPr><a:prstGeom prst="ellipse"/></xdr:spPr></xdr:sp>
      <xdr:cxnSp><xdr:nvCxnSpPr><xdr:cNvPr id="5" name="Connector"/></xdr:nvCxnSpPr></xdr:cxnSp>
    </xdr:grpSp>
    <xdr:clientData/>
  </xdr:oneCellAnchor>
  <mc:AlternateContent>
    <mc:Choice Requires="a14">
      <xdr:absoluteAnchor>
        <xdr:pos x="0" y="0"/><xdr:ext cx="100" cy="100"/>
        <xdr:sp><xdr:nvSpPr><xdr:cNvPr id="6" name="Chosen"/><xdr:cNvSpPr/></xdr:nvSpPr><xdr:spPr><a:prstGeom prst="diamond"/></xdr:spPr></xdr:sp>
        <xdr:clientData/>
      </xdr:absoluteAnchor>
    </mc:Choice>
    <mc:Fallback>
      <xdr:absoluteAnchor>
        <xdr:pos x="0" y="0"/><xdr:ext cx="100" cy="100"/>
        <xdr:sp><xdr:nvSpPr><xdr:cNvPr id="6" name="Chosen"/><xdr:cNvSpPr/></xdr:nvSpPr><xdr:spPr><a:prstGeom prst="diamond"/></xdr:spPr></xdr:sp>
        <xdr:clientData/>
      </xdr:absoluteAnchor>
    </mc:Fallback>
  </mc:AlternateContent>
</xdr:wsDr>`

func TestParseDrawing(t *testing.T) {
	shapes, err := ParseDrawing([]byte(testDrawingXML))
	if err != nil {
		t.Fatalf("ParseDrawing failed: %v", err)
	}

	if len(shapes) != 3 {
		t.Fatalf("Expected 3 shapes, got %d", len(shapes))
	}

	box := shapes[0]
	if box.Name() != "Box" {
		t.Errorf("Expected name 'Box', got %q", box.Name())
	}
	if box.SpPr.PrstGeom.Prst != models.ShapeTypeRoundRect {
		t.Errorf("Expected roundRect, got %v", box.SpPr.PrstGeom.Prst)
	}
	if box.Style == nil || box.Style.LnRef.SchemeClr.Shade.Val != 50000 {
		t.Errorf("Expected lnRef shade 50000, got %+v", box.Style)
	}
	if box.Style.FontRef.Idx != "minor" {
		t.Errorf("Expected minor font reference, got %q", box.Style.FontRef.Idx)
	}

	paras := box.TxBody.P
	if len(paras) != 1 || len(paras[0].R) != 2 {
		t.Fatalf("Expected 1 paragraph with 2 runs, got %+v", paras)
	}
	first := paras[0].R[0].RPr
	if first.B == nil || !*first.B {
		t.Errorf("Expected first run bold")
	}
	if first.Sz == nil || *first.Sz != 1100 {
		t.Errorf("Expected first run size 1100, got %v", first.Sz)
	}
	if first.Typeface() != "Calibri" {
		t.Errorf("Expected Calibri, got %q", first.Typeface())
	}
	second := paras[0].R[1].RPr
	if second.I == nil || *second.I {
		t.Errorf("Expected second run italic=false, got %v", second.I)
	}
	if box.TxBody.BodyPr.RtlCol == nil || *box.TxBody.BodyPr.RtlCol {
		t.Errorf("Expected rtlCol=false")
	}

	if shapes[1].Name() != "Inner" || shapes[1].SpPr.PrstGeom.Prst != models.ShapeTypeEllipse {
		t.Errorf("Expected grouped ellipse 'Inner', got %q", shapes[1].Name())
	}
	if shapes[2].Name() != "Chosen" || shapes[2].SpPr.PrstGeom.Prst != models.ShapeTypeDiamond {
		t.Errorf("Expected diamond 'Chosen', got %q", shapes[2].Name())
	}
}

func TestParseDrawingErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown geometry", `<wsDr><twoCellAnchor><sp><spPr><prstGeom prst="notAShape"/></spPr></sp></twoCellAnchor></wsDr>`},
		{"truncated", `<wsDr><twoCellAnchor><sp>`},
	}

	for _, tt := range tests {
		if _, err := ParseDrawing([]byte(tt.data)); err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
	}
}

func TestSummarize(t *testing.T) {
	shapes, err := ParseDrawing([]byte(testDrawingXML))
	if err != nil {
		t.Fatalf("ParseDrawing failed: %v", err)
	}

	s := Summarize(shapes[0])
	if s.ID != 2 || s.Name != "Box" {
		t.Errorf("Expected id 2 'Box', got %d %q", s.ID, s.Name)
	}
	if s.L != 10 || s.T != 20 || s.W != 200 || s.H != 80 {
		t.Errorf("Expected geometry (10,20,200,80), got (%d,%d,%d,%d)", s.L, s.T, s.W, s.H)
	}
	if s.Prst != "roundRect" || s.Type != "AutoShape-RoundedRectangle" {
		t.Errorf("Expected roundRect/AutoShape-RoundedRectangle, got %q/%q", s.Prst, s.Type)
	}
	if s.Rotation == nil || *s.Rotation != 90 {
		t.Errorf("Expected rotation 90, got %v", s.Rotation)
	}
	if s.Text != "Start here" || s.Runs != 2 {
		t.Errorf("Expected text 'Start here' with 2 runs, got %q with %d", s.Text, s.Runs)
	}

	empty := Summarize(models.ShapeRecord{NvSpPr: &models.NonVisualShape{CNvPr: models.NonVisualDrawingProps{Name: "Freeform 3"}}})
	if empty.Type != "Freeform 3" {
		t.Errorf("Expected name as type label, got %q", empty.Type)
	}
}

func TestFindDrawingRelationship(t *testing.T) {
	rels := `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/vmlDrawing" Target="../drawings/vmlDrawing1.vml"/>
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/drawing" Target="../drawings/drawing1.xml"/>
</Relationships>`

	if got := findDrawingRelationship([]byte(rels)); got != "../drawings/drawing1.xml" {
		t.Errorf("findDrawingRelationship() = %q, expected ../drawings/drawing1.xml", got)
	}
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		baseDir  string
		expected string
	}{
		{"../drawings/drawing1.xml", "xl/drawings", "xl/drawings/drawing1.xml"},
		{"/drawing1.xml", "xl/drawings", "xl/drawings/drawing1.xml"},
		{"/xl/worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
		{"drawing1.xml", "xl/drawings", "xl/drawings/drawing1.xml"},
	}

	for _, tt := range tests {
		result := resolveRelativePath(tt.target, tt.baseDir)
		if result != tt.expected {
			t.Errorf("resolveRelativePath(%q, %q) = %q, expected %q",
				tt.target, tt.baseDir, result, tt.expected)
		}
	}
}
