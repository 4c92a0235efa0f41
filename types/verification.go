package types

type SubmitVerificationRequest struct {
	Barcode string `json:"barcode" binding:"required"`
	Verdict string `json:"verdict" binding:"required,oneof=match mismatch"`
}

// VerificationStatus 商品的核验状况，user_verdict 为当前用户自己的结论
type VerificationStatus struct {
	MatchCount    int64   `json:"match_count"`
	MismatchCount int64   `json:"mismatch_count"`
	TotalCount    int64   `json:"total_count"`
	UserVerdict   *string `json:"user_verdict"`
}
