package l10n

import (
	"regexp"
	"strconv"
)

// PatternRule pairs a regular expression with a $n-reference output
// template. Rules handle the parametric strings the exact-match catalog
// cannot cover (counts, port numbers, durations).
//
// Rules are evaluated in declared order and the first match wins, so
// overlapping rules must list the more specific one first.
type PatternRule struct {
	Match  *regexp.Regexp
	Output string
}

// MustRule compiles expr and returns the rule. Panics on an invalid
// expression; intended for package-level tables.
func MustRule(expr, output string) PatternRule {
	return PatternRule{Match: regexp.MustCompile(expr), Output: output}
}

// groupRef finds $n and ${n} references in an output template.
var groupRef = regexp.MustCompile(`\$\{?(\d+)\}?`)

// Apply matches text against the rule and expands the output template.
// Before expanding, every group the template references must exist in the
// expression and must have matched non-empty text; otherwise the rule is
// skipped so resolution can fall through to the next rule. This guards
// against templates drifting out of sync with their expressions.
func (r PatternRule) Apply(text string) (string, bool) {
	if r.Match == nil {
		return "", false
	}
	idx := r.Match.FindStringSubmatchIndex(text)
	if idx == nil {
		return "", false
	}
	for _, ref := range groupRef.FindAllStringSubmatch(r.Output, -1) {
		g, err := strconv.Atoi(ref[1])
		if err != nil || g < 1 || g > r.Match.NumSubexp() {
			return "", false
		}
		if idx[2*g] < 0 || idx[2*g] == idx[2*g+1] {
			return "", false
		}
	}
	return string(r.Match.ExpandString(nil, r.Output, text, idx)), true
}

// DefaultPatterns holds the per-language rule tables for the dashboard's
// dynamic strings. Duration rules precede their shorter suffixes (天X小时
// before 小时X分) so the more specific form wins.
var DefaultPatterns = map[Lang][]PatternRule{
	English: {
		MustRule(`^共 (\d+) 个模型$`, "$1 models"),
		MustRule(`^找到 (\d+) 个凭证文件$`, "Found $1 credential files"),
		MustRule(`^端口 (\d+) 开放$`, "Port $1 open"),
		MustRule(`^端口 (\d+) 关闭$`, "Port $1 closed"),
		MustRule(`^端口 (\d+) 正常$`, "Port $1 OK"),
		MustRule(`^已使用 ([\d.]+)%$`, "$1% used"),
		MustRule(`^(\d+)天(\d+)小时$`, "${1}d ${2}h"),
		MustRule(`^(\d+)小时(\d+)分$`, "${1}h ${2}m"),
		MustRule(`^(\d+)分钟$`, "$1 min"),
		MustRule(`^(\d+)秒$`, "${1}s"),
		MustRule(`^路由策略已设置为 (.+)$`, "Routing strategy set to $1"),
		MustRule(`^缺少必需字段: (.+)$`, "Missing required field: $1"),
		MustRule(`^连接失败: (.+)$`, "Connection failed: $1"),
		MustRule(`^配置错误: (.+)$`, "Config error: $1"),
	},
	Vietnamese: {
		MustRule(`^共 (\d+) 个模型$`, "$1 mô hình"),
		MustRule(`^找到 (\d+) 个凭证文件$`, "Đã tìm thấy $1 tệp xác thực"),
		MustRule(`^端口 (\d+) 开放$`, "Cổng $1 mở"),
		MustRule(`^端口 (\d+) 关闭$`, "Cổng $1 đóng"),
		MustRule(`^端口 (\d+) 正常$`, "Cổng $1 bình thường"),
		MustRule(`^已使用 ([\d.]+)%$`, "Đã dùng $1%"),
		MustRule(`^(\d+)天(\d+)小时$`, "$1 ngày $2 giờ"),
		MustRule(`^(\d+)小时(\d+)分$`, "$1 giờ $2 phút"),
		MustRule(`^(\d+)分钟$`, "$1 phút"),
		MustRule(`^(\d+)秒$`, "$1 giây"),
		MustRule(`^路由策略已设置为 (.+)$`, "Đã đặt chiến lược định tuyến thành $1"),
		MustRule(`^缺少必需字段: (.+)$`, "Thiếu trường bắt buộc: $1"),
		MustRule(`^连接失败: (.+)$`, "Kết nối thất bại: $1"),
		MustRule(`^配置错误: (.+)$`, "Lỗi cấu hình: $1"),
	},
}
