package ocr

import (
	"reflect"
	"testing"

	"github.com/vicsion901-rgb/onlyteaching/core/student"
)

func TestParseText(t *testing.T) {
	text := "번호 | 이름 | 주민등록번호 | 주소\n" +
		"1 | 김철수 | 030315-4123456 | 서울시 강남구\n" +
		"2 | 이영희 | 05.03.02 | 서울시 서초구\n" +
		"3 | 박민준\n" + // too little signal: dropped
		"잡음\n"

	got := ParseText(text)

	want := []student.Row{
		{StudentNumber: "1", Name: "김철수", BirthDate: "2003-03-15", ResidentID: "030315-4123456", Address: "서울시 강남구"},
		{StudentNumber: "2", Name: "이영희", BirthDate: "2005-03-02", Address: "서울시 서초구"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseText() = %+v,\nwant %+v", got, want)
	}
}

func TestParseText_garbledDelimiters(t *testing.T) {
	got := ParseText("[김철수]{030315-4123456}!서울시 강남구\n")

	if len(got) != 1 {
		t.Fatalf("got %d rows, want 1", len(got))
	}
	row := got[0]
	if row.Name != "김철수" || row.ResidentID != "030315-4123456" || row.Address != "서울시 강남구" {
		t.Errorf("row = %+v", row)
	}
}

func TestParseText_compactDateWithDroppedZero(t *testing.T) {
	// OCR dropped the leading zero of the YYMMDD date
	got := ParseText("김영희 | 50302 | 서울시 송파구\n")

	if len(got) != 1 {
		t.Fatalf("got %d rows, want 1", len(got))
	}
	if got[0].BirthDate != "2005-03-02" {
		t.Errorf("BirthDate = %q, want 2005-03-02", got[0].BirthDate)
	}
}

func TestParseText_empty(t *testing.T) {
	if got := ParseText(""); len(got) != 0 {
		t.Errorf("ParseText(\"\") = %v, want none", got)
	}
}
