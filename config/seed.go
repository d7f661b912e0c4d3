package config

import (
	"gorm.io/gorm"

	"github.com/ntgiang/attt-survey-server/models"
)

// Thang điểm chuẩn 0..4 dùng chung cho các câu hỏi. Thứ tự lựa chọn
// chính là điểm của lựa chọn đó.
func thang(noiDungs ...string) []models.LuaChon {
	lcs := make([]models.LuaChon, 0, len(noiDungs))
	for i, nd := range noiDungs {
		lcs = append(lcs, models.LuaChon{NoiDung: nd, Diem: i, ThuTu: i})
	}
	return lcs
}

func thangThucHien() []models.LuaChon {
	return thang(
		"Không có / chưa thực hiện",
		"Có nhưng rất hạn chế",
		"Thực hiện ở mức cơ bản",
		"Thực hiện khá đầy đủ",
		"Thực hiện đầy đủ và được rà soát thường xuyên",
	)
}

func thangTanSuat() []models.LuaChon {
	return thang("Không bao giờ", "Hiếm khi", "Thỉnh thoảng", "Thường xuyên", "Luôn luôn")
}

func thangTyLe() []models.LuaChon {
	return thang("0%", "Dưới 25%", "Từ 25% đến 50%", "Từ 50% đến 75%", "Trên 75%")
}

func thangMucDo() []models.LuaChon {
	return thang("Hoàn toàn không", "Rất ít", "Một phần", "Phần lớn", "Toàn bộ")
}

// boCauHoi là 40 mục cố định: 39 câu hỏi chấm điểm thuộc 5 phân loại và
// mục "Kết thúc" cuối cùng chỉ dùng để chốt khảo sát.
func boCauHoi() []models.CauHoi {
	type seedMuc struct {
		phanLoai models.PhanLoai
		noiDung  string
		luaChons []models.LuaChon
	}

	muc := []seedMuc{
		// Quy chế
		{models.PhanLoaiQuyChe, "Doanh nghiệp có ban hành quy chế, chính sách an toàn thông tin bằng văn bản không?", thangThucHien()},
		{models.PhanLoaiQuyChe, "Quy chế an toàn thông tin có được rà soát và cập nhật định kỳ không?", thangTanSuat()},
		{models.PhanLoaiQuyChe, "Doanh nghiệp có quy định phân loại và quản lý dữ liệu quan trọng không?", thangThucHien()},
		{models.PhanLoaiQuyChe, "Có quy trình xử lý sự cố an toàn thông tin được ban hành chính thức không?", thangThucHien()},
		{models.PhanLoaiQuyChe, "Nhân viên mới có phải ký cam kết bảo mật thông tin khi nhận việc không?", thangTanSuat()},
		{models.PhanLoaiQuyChe, "Doanh nghiệp có quy định về việc sử dụng thiết bị cá nhân trong công việc không?", thangThucHien()},
		{models.PhanLoaiQuyChe, "Có quy định kiểm soát quyền truy cập hệ thống theo vai trò công việc không?", thangThucHien()},
		{models.PhanLoaiQuyChe, "Việc tuân thủ quy chế an toàn thông tin có được kiểm tra định kỳ không?", thangTanSuat()},

		// Tổ chức
		{models.PhanLoaiToChuc, "Doanh nghiệp có bộ phận hoặc cá nhân phụ trách an toàn thông tin không?", thangThucHien()},
		{models.PhanLoaiToChuc, "Trách nhiệm về an toàn thông tin có được phân công rõ ràng bằng văn bản không?", thangThucHien()},
		{models.PhanLoaiToChuc, "Lãnh đạo doanh nghiệp có trực tiếp chỉ đạo công tác an toàn thông tin không?", thangTanSuat()},
		{models.PhanLoaiToChuc, "Các sự cố an toàn thông tin có được báo cáo về một đầu mối thống nhất không?", thangTanSuat()},
		{models.PhanLoaiToChuc, "Doanh nghiệp có phối hợp với đơn vị chuyên trách bên ngoài khi xảy ra sự cố không?", thangMucDo()},
		{models.PhanLoaiToChuc, "Công tác an toàn thông tin có nằm trong kế hoạch hoạt động hàng năm không?", thangTanSuat()},
		{models.PhanLoaiToChuc, "Doanh nghiệp có tổ chức diễn tập ứng phó sự cố an toàn thông tin định kỳ không?", thangTanSuat()},
		{models.PhanLoaiToChuc, "Đối tác và nhà cung cấp có được đánh giá về an toàn thông tin trước khi hợp tác không?", thangTanSuat()},

		// Nhân lực
		{models.PhanLoaiNhanLuc, "Nhân viên có được đào tạo nhận thức an toàn thông tin khi bắt đầu làm việc không?", thangMucDo()},
		{models.PhanLoaiNhanLuc, "Doanh nghiệp có tổ chức đào tạo, tuyên truyền về an toàn thông tin định kỳ không?", thangTanSuat()},
		{models.PhanLoaiNhanLuc, "Tỷ lệ nhân viên nắm được các quy định an toàn thông tin cơ bản là bao nhiêu?", thangTyLe()},
		{models.PhanLoaiNhanLuc, "Cán bộ kỹ thuật có được đào tạo chuyên sâu hoặc có chứng chỉ về an toàn thông tin không?", thangMucDo()},
		{models.PhanLoaiNhanLuc, "Tỷ lệ nhân viên nhận diện được thư điện tử lừa đảo (phishing) là bao nhiêu?", thangTyLe()},
		{models.PhanLoaiNhanLuc, "Khi nhân viên nghỉ việc, tài khoản và quyền truy cập có bị thu hồi ngay không?", thangTanSuat()},
		{models.PhanLoaiNhanLuc, "Nhân viên có được hướng dẫn sử dụng mật khẩu mạnh và xác thực nhiều lớp không?", thangMucDo()},
		{models.PhanLoaiNhanLuc, "Doanh nghiệp có đánh giá định kỳ kỹ năng an toàn thông tin của nhân viên không?", thangTanSuat()},

		// Đầu tư
		{models.PhanLoaiDauTu, "Doanh nghiệp có dành ngân sách riêng cho an toàn thông tin hàng năm không?", thangMucDo()},
		{models.PhanLoaiDauTu, "Mức đầu tư cho an toàn thông tin chiếm bao nhiêu trong tổng chi cho công nghệ thông tin?", thangTyLe()},
		{models.PhanLoaiDauTu, "Máy tính trong doanh nghiệp có được trang bị phần mềm phòng chống mã độc có bản quyền không?", thangMucDo()},
		{models.PhanLoaiDauTu, "Doanh nghiệp có đầu tư thiết bị bảo vệ mạng như tường lửa, VPN không?", thangMucDo()},
		{models.PhanLoaiDauTu, "Doanh nghiệp có thuê dịch vụ chuyên nghiệp để đánh giá, giám sát an toàn thông tin không?", thangTanSuat()},
		{models.PhanLoaiDauTu, "Việc nâng cấp, vá lỗi hệ thống có được cấp kinh phí kịp thời không?", thangTanSuat()},
		{models.PhanLoaiDauTu, "Doanh nghiệp có dự phòng kinh phí hoặc bảo hiểm cho rủi ro an toàn thông tin không?", thangMucDo()},

		// Vận hành
		{models.PhanLoaiVanHanh, "Dữ liệu quan trọng của doanh nghiệp có được sao lưu định kỳ không?", thangTanSuat()},
		{models.PhanLoaiVanHanh, "Bản sao lưu có được kiểm tra khôi phục thử không?", thangTanSuat()},
		{models.PhanLoaiVanHanh, "Hệ điều hành và phần mềm có được cập nhật bản vá thường xuyên không?", thangTanSuat()},
		{models.PhanLoaiVanHanh, "Truy cập từ xa vào hệ thống có đi qua kênh mã hoá (VPN) không?", thangMucDo()},
		{models.PhanLoaiVanHanh, "Nhật ký hệ thống có được lưu trữ và theo dõi không?", thangMucDo()},
		{models.PhanLoaiVanHanh, "Tài khoản quản trị hệ thống có sử dụng xác thực nhiều lớp không?", thangMucDo()},
		{models.PhanLoaiVanHanh, "Các sự cố an toàn thông tin có được ghi nhận và rút kinh nghiệm không?", thangTanSuat()},
		{models.PhanLoaiVanHanh, "Doanh nghiệp có kế hoạch duy trì hoạt động khi hệ thống gặp sự cố không?", thangMucDo()},
	}

	qs := make([]models.CauHoi, 0, len(muc)+1)
	for i, m := range muc {
		qs = append(qs, models.CauHoi{
			ThuTu:    i,
			PhanLoai: m.phanLoai,
			NoiDung:  m.noiDung,
			LuaChons: m.luaChons,
		})
	}

	// Mục kết thúc: không phân loại, không lựa chọn, không chấm điểm
	qs = append(qs, models.CauHoi{
		ThuTu:     len(muc),
		NoiDung:   "Kết thúc",
		LaKetThuc: true,
	})
	return qs
}

// SeedCauHoi nạp bộ câu hỏi cố định nếu bảng đang trống.
func SeedCauHoi(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.CauHoi{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	qs := boCauHoi()
	return db.Transaction(func(tx *gorm.DB) error {
		for i := range qs {
			if err := tx.Create(&qs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
