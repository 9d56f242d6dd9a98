package xlsimport

import (
	"reflect"
	"testing"

	"github.com/vicsion901-rgb/onlyteaching/core/student"
)

func TestExtractResidentDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"030315-4123456", "0303154123456"},
		{"030315 4123456", "0303154123456"},
		{"0303154123456", "0303154123456"},
		{"주민: 030315-4123456", "0303154123456"},
		{"030315", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ExtractResidentDigits(tt.in); got != tt.want {
			t.Errorf("ExtractResidentDigits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBirthDateFromResident(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "2000s male", in: "0303154123456", want: "2003-03-15"},
		{name: "2000s digit 3", in: "0501013234567", want: "2005-01-01"},
		{name: "1900s default", in: "8705121234567", want: "1987-05-12"},
		{name: "1800s digit 9", in: "9901019123456", want: "1899-01-01"},
		{name: "invalid month", in: "0313154123456", want: ""},
		{name: "invalid day", in: "0303004123456", want: ""},
		{name: "too short", in: "030315", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BirthDateFromResident(tt.in); got != tt.want {
				t.Errorf("BirthDateFromResident(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeBirthDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2017.03.02", "2017-03-02"},
		{"2017-3-2", "2017-03-02"},
		{"2017/03/02", "2017-03-02"},
		{"20170302", "2017-03-02"},
		{"170302", "2017-03-02"},
		{"430302", "1943-03-02"},
		{"290101", "2029-01-01"},
		{"300101", "1930-01-01"},
		{"2017.13.02", ""},
		{"2017.03.42", ""},
		{"생일 미상", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeBirthDate(tt.in); got != tt.want {
			t.Errorf("NormalizeBirthDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func rosterMapping(t *testing.T) MappingResult {
	t.Helper()
	mapping := BuildMapping([]string{"번호", "이름", "생년월일", "주민등록번호", "주소"})
	if !mapping.CanAutoApply {
		t.Fatal("roster mapping did not auto-apply")
	}
	return mapping
}

func TestMapRows(t *testing.T) {
	matrix := [][]string{
		{"번호", "이름", "생년월일", "주민등록번호", "주소"},
		{"1", "김철수", "2017.03.02", "", "서울특별시 강남구"},
		{"2", "이영희", "2005-01-01", "050101-3234567", "서울특별시 서초구"},
		{"3", "", "2017.05.21", "", ""}, // nameless: dropped but counted
		{"4", "박민준"},                   // short row
	}
	mapping := rosterMapping(t)

	rows, totalRows := MapRows(matrix, 0, mapping)

	if totalRows != 4 {
		t.Errorf("totalRows = %d, want 4", totalRows)
	}
	want := []student.Row{
		{StudentNumber: "1", Name: "김철수", BirthDate: "2017.03.02", Address: "서울특별시 강남구"},
		// the resident ID overrides the stated birth date
		{StudentNumber: "2", Name: "이영희", BirthDate: "050101", ResidentID: "050101-3234567", Address: "서울특별시 서초구"},
		{StudentNumber: "4", Name: "박민준"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %+v,\nwant %+v", rows, want)
	}
}

func TestMapRows_headerOnLastRow(t *testing.T) {
	matrix := [][]string{{"번호", "이름"}}
	rows, totalRows := MapRows(matrix, 0, rosterMapping(t))
	if len(rows) != 0 || totalRows != 0 {
		t.Errorf("got %d rows / %d total, want 0 / 0", len(rows), totalRows)
	}
}

func TestMapRecordRows(t *testing.T) {
	matrix := [][]string{
		{"번호", "이름", "생년월일", "주민등록번호", "주소"},
		{"1번", "김철수", "2017.03.02", "", "서울특별시 강남구"},
		{"", "이영희", "", "030315-4123456", "서울특별시 서초구"},
		{"", "", "", "", ""},
		{"", "박민준", "170521", "", ""},
	}
	mapping := rosterMapping(t)

	rows := MapRecordRows(matrix, 0, mapping)

	want := []student.Row{
		{StudentNumber: "1", Name: "김철수", BirthDate: "2017-03-02", Address: "서울특별시 강남구"},
		{StudentNumber: "2", Name: "이영희", BirthDate: "2003-03-15", ResidentID: "030315-4123456", Address: "서울특별시 서초구"},
		{StudentNumber: "4", Name: "박민준", BirthDate: "2017-05-21"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %+v,\nwant %+v", rows, want)
	}
}
