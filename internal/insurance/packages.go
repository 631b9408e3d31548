package insurance

// Packages is the static product catalogue. Pricing and catalogue management
// live outside this service.
func Packages() []Package {
	return []Package{
		{
			ID:          "1",
			Name:        "Bảo hiểm Thiên tai Cơ bản",
			Price:       500000,
			Coverage:    "Lũ lụt, bão, động đất",
			Description: "Gói bảo hiểm cơ bản cho thiên tai tự nhiên",
			Features:    []string{"Bồi thường tối đa 50 triệu", "Hỗ trợ khẩn cấp 24/7"},
		},
		{
			ID:          "2",
			Name:        "Bảo hiểm Thiên tai Nâng cao",
			Price:       1200000,
			Coverage:    "Toàn bộ thiên tai + hỏa hoạn",
			Description: "Bảo vệ toàn diện cho tài sản và gia đình",
			Features:    []string{"Bồi thường tối đa 200 triệu", "Miễn thẩm định", "Gia hạn tự động"},
		},
		{
			ID:          "3",
			Name:        "Bảo hiểm Thiên tai Premium",
			Price:       2500000,
			Coverage:    "Mọi rủi ro + bảo hiểm sức khỏe",
			Description: "Gói cao cấp với quyền lợi tối ưu",
			Features:    []string{"Bồi thường không giới hạn", "Hỗ trợ pháp lý", "Ưu tiên xử lý"},
		},
	}
}
