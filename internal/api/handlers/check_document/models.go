package check_document

// DocumentCheckResponse результат проверки CPF
type DocumentCheckResponse struct {
	Document string `json:"document"`
	Taken    bool   `json:"taken"`
}
