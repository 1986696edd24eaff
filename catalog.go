package l10n

import (
	"fmt"
	"sort"
)

// DefaultCatalog holds the curated translations for the dashboard UI.
// Keys are the exact, trimmed strings the backend renders. Strings not in
// this table fall through to the pattern tables and finally pass through
// unchanged.
var DefaultCatalog = Catalog{
	// Navigation and panels
	"总览":    {English: "Overview", Vietnamese: "Tổng quan"},
	"系统":    {English: "System", Vietnamese: "Hệ thống"},
	"日志":    {English: "Logs", Vietnamese: "Nhật ký"},
	"配置":    {English: "Configuration", Vietnamese: "Cấu hình"},
	"设置":    {English: "Settings", Vietnamese: "Cài đặt"},
	"语言":    {English: "Language", Vietnamese: "Ngôn ngữ"},
	"模型列表": {English: "Model List", Vietnamese: "Danh sách mô hình"},
	"API测试器": {English: "API Tester", Vietnamese: "Trình kiểm tra API"},
	"数据导出":  {English: "Data Export", Vietnamese: "Xuất dữ liệu"},
	"更新历史":  {English: "Update History", Vietnamese: "Lịch sử cập nhật"},

	// Status panel
	"服务状态": {English: "Service Status", Vietnamese: "Trạng thái dịch vụ"},
	"健康状态": {English: "Health Status", Vietnamese: "Trạng thái sức khỏe"},
	"健康检查": {English: "Health Check", Vietnamese: "Kiểm tra sức khỏe"},
	"内存使用": {English: "Memory Usage", Vietnamese: "Sử dụng bộ nhớ"},
	"磁盘空间": {English: "Disk Space", Vietnamese: "Dung lượng đĩa"},
	"外网连接": {English: "Internet Connectivity", Vietnamese: "Kết nối mạng ngoài"},
	"API端口":  {English: "API Port", Vietnamese: "Cổng API"},
	"认证文件": {English: "Credential Files", Vietnamese: "Tệp xác thực"},
	"配置文件": {English: "Config File", Vietnamese: "Tệp cấu hình"},
	"路由策略": {English: "Routing Strategy", Vietnamese: "Chiến lược định tuyến"},
	"运行中":   {English: "Running", Vietnamese: "Đang chạy"},
	"已停止":   {English: "Stopped", Vietnamese: "Đã dừng"},
	"正常":     {English: "Healthy", Vietnamese: "Bình thường"},
	"异常":     {English: "Unhealthy", Vietnamese: "Bất thường"},
	"开放":     {English: "Open", Vietnamese: "Mở"},
	"关闭":     {English: "Closed", Vietnamese: "Đóng"},

	// Request statistics
	"请求":     {English: "Requests", Vietnamese: "Yêu cầu"},
	"请求统计": {English: "Request Statistics", Vietnamese: "Thống kê yêu cầu"},
	"请求日志": {English: "Request Logs", Vietnamese: "Nhật ký yêu cầu"},
	"响应时间": {English: "Response Time", Vietnamese: "Thời gian phản hồi"},
	"成功率":   {English: "Success Rate", Vietnamese: "Tỷ lệ thành công"},
	"错误":     {English: "Errors", Vietnamese: "Lỗi"},
	"警告":     {English: "Warnings", Vietnamese: "Cảnh báo"},

	// Actions
	"刷新":     {English: "Refresh", Vietnamese: "Làm mới"},
	"保存":     {English: "Save", Vietnamese: "Lưu"},
	"取消":     {English: "Cancel", Vietnamese: "Hủy"},
	"确定":     {English: "OK", Vietnamese: "Đồng ý"},
	"启动":     {English: "Start", Vietnamese: "Khởi động"},
	"停止":     {English: "Stop", Vietnamese: "Dừng"},
	"重启":     {English: "Restart", Vietnamese: "Khởi động lại"},
	"重启服务": {English: "Restart Service", Vietnamese: "Khởi động lại dịch vụ"},
	"检查更新": {English: "Check for Updates", Vietnamese: "Kiểm tra cập nhật"},
	"测试连接": {English: "Test Connection", Vietnamese: "Kiểm tra kết nối"},

	// Versions
	"当前版本":     {English: "Current Version", Vietnamese: "Phiên bản hiện tại"},
	"最新版本":     {English: "Latest Version", Vietnamese: "Phiên bản mới nhất"},
	"已是最新版本": {English: "Already up to date", Vietnamese: "Đã là phiên bản mới nhất"},

	// Unit labels used by the value formatters
	"天":       {English: "days", Vietnamese: "ngày"},
	"次/分钟": {English: "req/min", Vietnamese: "lần/phút"},

	// Transient messages
	"服务运行中":         {English: "Service running", Vietnamese: "Dịch vụ đang chạy"},
	"服务未运行":         {English: "Service not running", Vietnamese: "Dịch vụ chưa chạy"},
	"网络正常":           {English: "Network OK", Vietnamese: "Mạng bình thường"},
	"无法连接外网":       {English: "Cannot reach the internet", Vietnamese: "Không thể kết nối mạng ngoài"},
	"连接失败":           {English: "Connection failed", Vietnamese: "Kết nối thất bại"},
	"无法检测端口状态":   {English: "Cannot detect port status", Vietnamese: "Không thể kiểm tra trạng thái cổng"},
	"无法获取内存信息":   {English: "Cannot read memory info", Vietnamese: "Không thể lấy thông tin bộ nhớ"},
	"无法获取磁盘信息":   {English: "Cannot read disk info", Vietnamese: "Không thể lấy thông tin đĩa"},
	"配置文件有效":       {English: "Config file is valid", Vietnamese: "Tệp cấu hình hợp lệ"},
	"认证目录不存在":     {English: "Credential directory does not exist", Vietnamese: "Thư mục xác thực không tồn tại"},
	"日志已清空":         {English: "Logs cleared", Vietnamese: "Đã xóa nhật ký"},
	"暂无日志可清空":     {English: "No logs to clear", Vietnamese: "Không có nhật ký để xóa"},
	"统计数据已清空":     {English: "Statistics cleared", Vietnamese: "Đã xóa dữ liệu thống kê"},
	"清空失败":           {English: "Clear failed", Vietnamese: "Xóa thất bại"},
	"已重启服务以应用配置": {English: "Service restarted to apply config", Vietnamese: "Đã khởi động lại dịch vụ để áp dụng cấu hình"},
	"配置重载信号已发送":   {English: "Config reload signal sent", Vietnamese: "Đã gửi tín hiệu tải lại cấu hình"},
	"端口必须是1-65535之间的整数": {English: "Port must be an integer between 1 and 65535", Vietnamese: "Cổng phải là số nguyên từ 1 đến 65535"},
	"欢迎回来，祝你今天高效完成任务。": {English: "Welcome back, have a productive day.", Vietnamese: "Chào mừng trở lại, chúc bạn một ngày làm việc hiệu quả."},
}

// Lookup returns the translation for an exact, trimmed key.
func (c Catalog) Lookup(key string, lang Lang) (string, bool) {
	entry, ok := c[key]
	if !ok {
		return "", false
	}
	value, ok := entry[lang]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// Merge folds other into c, overriding per-language values on key collision.
// The receiver is returned for chaining.
func (c Catalog) Merge(other Catalog) Catalog {
	for key, entry := range other {
		existing, ok := c[key]
		if !ok {
			existing = make(Translations, len(entry))
			c[key] = existing
		}
		for lang, value := range entry {
			existing[lang] = value
		}
	}
	return c
}

// Keys returns the catalog keys in sorted order.
func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks that every key carries a non-empty translation for every
// given target language, and returns the missing key/language pairs.
// An empty result means the catalog is complete for those targets.
func (c Catalog) Validate(targets ...Lang) []string {
	var missing []string
	for _, key := range c.Keys() {
		for _, lang := range targets {
			if _, ok := c.Lookup(key, lang); !ok {
				missing = append(missing, fmt.Sprintf("%s [%s]", key, lang))
			}
		}
	}
	return missing
}
