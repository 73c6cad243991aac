package contact

// Merge reconciles the OCR-derived candidate with an optional QR-derived one.
// Precedence is per field, not per record: the QR value wins whenever it is
// non-empty, otherwise the OCR value stands. A nil QR candidate, or one
// without data, leaves the OCR candidate unchanged.
func Merge(ocr Candidate, qr *Candidate) Candidate {
	if qr == nil || !qr.HasData() {
		return ocr
	}
	pick := func(q, o string) string {
		if q != "" {
			return q
		}
		return o
	}
	return Candidate{
		Name:     pick(qr.Name, ocr.Name),
		Company:  pick(qr.Company, ocr.Company),
		Email:    pick(qr.Email, ocr.Email),
		Phone:    pick(qr.Phone, ocr.Phone),
		JobTitle: pick(qr.JobTitle, ocr.JobTitle),
		Website:  pick(qr.Website, ocr.Website),
		Address:  pick(qr.Address, ocr.Address),
	}
}
