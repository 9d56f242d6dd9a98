package xlsimport

// FieldKey identifies one of the five student-record fields a spreadsheet
// column can map to.
type FieldKey string

const (
	FieldStudentNumber FieldKey = "student_number"
	FieldName          FieldKey = "name"
	FieldBirthDate     FieldKey = "birth_date"
	FieldResidentID    FieldKey = "resident_id"
	FieldAddress       FieldKey = "address"
)

// fieldOrder fixes iteration order; map iteration alone would make
// best-field selection nondeterministic on equal scores.
var fieldOrder = []FieldKey{
	FieldStudentNumber,
	FieldName,
	FieldBirthDate,
	FieldResidentID,
	FieldAddress,
}

// fieldCandidates is the static synonym dictionary: the Korean and English
// labels a person might use as a column header for each field.
// Loaded once at process start, not user-editable.
var fieldCandidates = map[FieldKey][]string{
	FieldStudentNumber: {"번호", "순번", "No", "학생번호"},
	FieldName:          {"이름", "성명", "학생명", "Name"},
	FieldBirthDate:     {"생년월일", "생일", "출생일", "출생일자", "DOB", "Birth"},
	FieldResidentID:    {"주민등록번호", "주민번호", "RRN", "ID Number"},
	FieldAddress:       {"주소", "거주지", "집주소", "Address"},
}

// AllCandidateTokens returns every synonym of every field, in field order.
func AllCandidateTokens() []string {
	tokens := make([]string, 0, 24)
	for _, field := range fieldOrder {
		tokens = append(tokens, fieldCandidates[field]...)
	}
	return tokens
}
