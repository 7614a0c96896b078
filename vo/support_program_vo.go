package vo

// SupportProgramRequestVO is the public-data feed payload; field names follow the feed.
type SupportProgramRequestVO struct {
	Data []SupportData `json:"data"`
}

type SupportData struct {
	SuptBizTitlNm    string `json:"supt_biz_titl_nm"`
	BizSuptTrgtInfo  string `json:"biz_supt_trgt_info"`
	BizSuptBdgtInfo  string `json:"biz_supt_bdgt_info"`
	BizSuptCtnt      string `json:"biz_supt_ctnt"`
	SuptBizChrct     string `json:"supt_biz_chrct"`
	SuptBizIntrdInfo string `json:"supt_biz_intrd_info"`
	BizYr            string `json:"biz_yr"`
	DetlPgURL        string `json:"detl_pg_url"`
}
