package l10n

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/panelkit/l10n/dom"
	"github.com/panelkit/l10n/store"
)

const pageHTML = `<html><head><title>总览</title></head><body>
<header class="header-actions"><span class="version">v3.2.1</span></header>
<h1>健康状态</h1>
<button id="refresh-btn"><span class="icon"></span>刷新</button>
<div class="stat-label">请求</div>
<input id="port-input" placeholder="端口必须是1-65535之间的整数"/>
<span id="ver" title="检查更新">abc1234</span>
<select id="strategy"><option>模型列表</option></select>
</body></html>`

func newTestDoc(t *testing.T) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		t.Fatalf("parsing test document: %v", err)
	}
	return doc
}

// recordingStore is a Store that records writes and can fail on demand.
type recordingStore struct {
	values map[string]string
	sets   []string
	getErr error
	setErr error
}

func newRecordingStore() *recordingStore {
	return &recordingStore{values: make(map[string]string)}
}

func (s *recordingStore) Get(key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.values[key], nil
}

func (s *recordingStore) Set(key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	s.sets = append(s.sets, value)
	return nil
}

func TestSession_DefaultsToSource(t *testing.T) {
	doc := newTestDoc(t)
	s := New(doc)

	if s.Lang() != SourceLang {
		t.Errorf("Lang = %s, want %s", s.Lang(), SourceLang)
	}
	if got := doc.Find("h1").Text(); got != "健康状态" {
		t.Errorf("document must be untouched under source language, h1 = %q", got)
	}
	if s.Synchronizer().Active() {
		t.Error("live synchronization must be inert under source language")
	}
}

func TestSession_SwitchToTarget(t *testing.T) {
	doc := newTestDoc(t)
	st := newRecordingStore()
	s := New(doc, WithStore(st))

	if err := s.Switch(English); err != nil {
		t.Fatalf("Switch: %v", err)
	}

	if got := doc.Find("title").Text(); got != "Overview" {
		t.Errorf("title = %q, want %q", got, "Overview")
	}
	if got := doc.Find("h1").Text(); got != "Health Status" {
		t.Errorf("h1 = %q, want %q", got, "Health Status")
	}
	if got := doc.Find(".stat-label").Text(); got != "Requests" {
		t.Errorf("stat label = %q, want %q", got, "Requests")
	}
	if got, _ := doc.Find("#port-input").Attr("placeholder"); got != "Port must be an integer between 1 and 65535" {
		t.Errorf("placeholder = %q", got)
	}
	if got, _ := doc.Find("#ver").Attr("title"); got != "Check for Updates" {
		t.Errorf("tooltip = %q", got)
	}
	if got := doc.Find("#strategy option").Text(); got != "Model List" {
		t.Errorf("option = %q", got)
	}
	if got, _ := doc.Find("html").Attr("lang"); got != "en" {
		t.Errorf("html lang = %q, want en", got)
	}

	// Nested icon markup inside the button survives; only the direct text
	// child is rewritten.
	if doc.Find("#refresh-btn .icon").Length() != 1 {
		t.Error("icon child was corrupted by the sweep")
	}
	if got := doc.Find("#refresh-btn").Text(); got != "Refresh" {
		t.Errorf("button text = %q, want %q", got, "Refresh")
	}

	if st.values[PreferenceKey] != "en" {
		t.Errorf("persisted %q, want en", st.values[PreferenceKey])
	}
	if !s.Synchronizer().Active() {
		t.Error("live synchronization must be active under a target language")
	}
}

func TestSession_SwitchUnsupported(t *testing.T) {
	doc := newTestDoc(t)
	s := New(doc)

	err := s.Switch("de")
	var unsupported *UnsupportedLanguageError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Switch(de) error = %v, want UnsupportedLanguageError", err)
	}
	if s.Lang() != SourceLang {
		t.Errorf("failed switch must not change language, got %s", s.Lang())
	}
}

func TestSession_RoundTripReversion(t *testing.T) {
	doc := newTestDoc(t)
	st := newRecordingStore()
	s := New(doc, WithStore(st))

	if err := s.Switch(English); err != nil {
		t.Fatalf("Switch en: %v", err)
	}
	if err := s.Switch(SourceLang); err != nil {
		t.Fatalf("Switch back: %v", err)
	}

	if got := doc.Find("title").Text(); got != "总览" {
		t.Errorf("title = %q, want original", got)
	}
	if got := doc.Find("h1").Text(); got != "健康状态" {
		t.Errorf("h1 = %q, want byte-identical original", got)
	}
	if got, _ := doc.Find("#port-input").Attr("placeholder"); got != "端口必须是1-65535之间的整数" {
		t.Errorf("placeholder = %q, want original", got)
	}
	if got, _ := doc.Find("#ver").Attr("title"); got != "检查更新" {
		t.Errorf("tooltip = %q, want original", got)
	}
	// The lang attribute did not exist before the sweep, so reversion
	// removes it rather than writing an empty value.
	if _, ok := doc.Find("html").Attr("lang"); ok {
		t.Error("html lang must be removed on reversion")
	}
	if st.values[PreferenceKey] != "zh" {
		t.Errorf("persisted %q, want zh", st.values[PreferenceKey])
	}
	if s.Synchronizer().Active() {
		t.Error("live synchronization must be inert after reverting")
	}

	// The cache survives reversion: a later re-translation still works.
	if err := s.Switch(Vietnamese); err != nil {
		t.Fatalf("Switch vi: %v", err)
	}
	if got := doc.Find("h1").Text(); got != "Trạng thái sức khỏe" {
		t.Errorf("h1 after re-translation = %q", got)
	}
}

func TestSession_TargetToTarget(t *testing.T) {
	doc := newTestDoc(t)
	s := New(doc)

	if err := s.Switch(English); err != nil {
		t.Fatalf("Switch en: %v", err)
	}
	if err := s.Switch(Vietnamese); err != nil {
		t.Fatalf("Switch vi: %v", err)
	}

	// Re-translation reads the cached originals, never the English text.
	if got := doc.Find("h1").Text(); got != "Trạng thái sức khỏe" {
		t.Errorf("h1 = %q, want Vietnamese from original", got)
	}
	if got, _ := doc.Find("html").Attr("lang"); got != "vi" {
		t.Errorf("html lang = %q, want vi", got)
	}
}

func TestSession_RefreshOnlyWhenLeavingSource(t *testing.T) {
	doc := newTestDoc(t)
	calls := 0
	s := New(doc, WithRefreshFunc("stats", func() { calls++ }))

	s.Switch(English)
	if calls != 1 {
		t.Fatalf("refresh calls after source→target = %d, want 1", calls)
	}
	s.Switch(Vietnamese)
	if calls != 1 {
		t.Fatalf("refresh calls after target→target = %d, want 1", calls)
	}
	s.Switch(SourceLang)
	if calls != 1 {
		t.Fatalf("refresh calls after target→source = %d, want 1", calls)
	}
	s.Switch(Vietnamese)
	if calls != 2 {
		t.Fatalf("refresh calls after second source→target = %d, want 2", calls)
	}
}

func TestSession_RefreshPanicDoesNotEscape(t *testing.T) {
	doc := newTestDoc(t)
	ran := false
	s := New(doc,
		WithRefreshFunc("a-panics", func() { panic("boom") }),
		WithRefreshFunc("b-runs", func() { ran = true }),
	)

	if err := s.Switch(English); err != nil {
		t.Fatalf("Switch: %v", err)
	}
	if !ran {
		t.Error("entry points after a panicking one must still run")
	}
}

func TestSession_StoreFailuresDegrade(t *testing.T) {
	doc := newTestDoc(t)
	st := newRecordingStore()
	st.getErr = errors.New("storage unavailable")
	st.setErr = errors.New("storage unavailable")

	s := New(doc, WithStore(st))
	if s.Lang() != SourceLang {
		t.Errorf("Lang = %s, want source default on read failure", s.Lang())
	}

	// A failing write must not block the switch itself.
	if err := s.Switch(English); err != nil {
		t.Fatalf("Switch with failing store: %v", err)
	}
	if got := doc.Find("h1").Text(); got != "Health Status" {
		t.Errorf("h1 = %q, document must still be translated", got)
	}
}

func TestSession_RestoresPersistedLanguage(t *testing.T) {
	doc := newTestDoc(t)
	st := store.NewMemory()
	if err := st.Set(PreferenceKey, "en"); err != nil {
		t.Fatal(err)
	}

	s := New(doc, WithStore(st))
	if s.Lang() != English {
		t.Fatalf("Lang = %s, want restored en", s.Lang())
	}
	if got := doc.Find("h1").Text(); got != "Health Status" {
		t.Errorf("h1 = %q, restored session must sweep immediately", got)
	}
	if !s.Synchronizer().Active() {
		t.Error("restored target language must activate live synchronization")
	}
}

func TestSession_LanguageHints(t *testing.T) {
	doc := newTestDoc(t)
	s := New(doc, WithLanguageHints("vi-VN,vi;q=0.9"))

	if s.Lang() != Vietnamese {
		t.Fatalf("Lang = %s, want vi from hints", s.Lang())
	}
	if got := doc.Find("h1").Text(); got != "Trạng thái sức khỏe" {
		t.Errorf("h1 = %q", got)
	}
}

func TestSession_ObserveInsertedNode(t *testing.T) {
	doc := newTestDoc(t)
	s := New(doc)
	if err := s.Switch(English); err != nil {
		t.Fatalf("Switch: %v", err)
	}

	// Simulate the updater rendering a result after the sweep.
	parent := doc.Find(".header-actions").Nodes[0]
	inserted := &html.Node{Type: html.TextNode, Data: "已是最新版本"}
	parent.AppendChild(inserted)

	stats := s.Observe([]dom.Mutation{{Kind: dom.ChildAdded, Node: inserted}})
	if stats.Written != 1 {
		t.Fatalf("Written = %d, want 1", stats.Written)
	}
	if inserted.Data != "Already up to date" {
		t.Errorf("inserted text = %q, want %q", inserted.Data, "Already up to date")
	}

	// And it reverts with everything else.
	s.Switch(SourceLang)
	if inserted.Data != "已是最新版本" {
		t.Errorf("inserted text after reversion = %q", inserted.Data)
	}
}

func TestSession_ObserveInertUnderSource(t *testing.T) {
	doc := newTestDoc(t)
	s := New(doc)

	parent := doc.Find(".header-actions").Nodes[0]
	inserted := &html.Node{Type: html.TextNode, Data: "已是最新版本"}
	parent.AppendChild(inserted)

	stats := s.Observe([]dom.Mutation{{Kind: dom.ChildAdded, Node: inserted}})
	if stats.Visited != 0 || stats.Written != 0 {
		t.Errorf("stats = %+v, want all zero while source language holds", stats)
	}
	if inserted.Data != "已是最新版本" {
		t.Errorf("inserted text = %q, must be untouched", inserted.Data)
	}
}

func TestSession_InjectSelector(t *testing.T) {
	doc := newTestDoc(t)
	s := New(doc)
	s.InjectSelector()

	sel := doc.Find(".header-actions select.lang-select")
	if sel.Length() != 1 {
		t.Fatalf("selector count = %d, want 1", sel.Length())
	}
	if got := sel.Find("option").Length(); got != 3 {
		t.Errorf("option count = %d, want 3", got)
	}
	if got, _ := sel.Find("option[selected]").Attr("value"); got != "zh" {
		t.Errorf("selected = %q, want zh", got)
	}

	// Injection happens at most once.
	s.InjectSelector()
	if got := doc.Find("select.lang-select").Length(); got != 1 {
		t.Errorf("selector count after second injection = %d, want 1", got)
	}

	// The control is opted out: a sweep must not rewrite its labels.
	s.Switch(English)
	labels := doc.Find("select.lang-select option").Map(func(_ int, o *goquery.Selection) string {
		return o.Text()
	})
	for _, label := range labels {
		if label == "Chinese" || label == "" {
			t.Errorf("selector label %q was rewritten", label)
		}
	}
}

func TestSession_Hooks(t *testing.T) {
	doc := newTestDoc(t)

	var notified []string
	hooks := Hooks{
		Notify: func(message, level string) {
			notified = append(notified, level+":"+message)
		},
		Confirm: func(message string) bool {
			return message == "Restart Service"
		},
		Prompt: func(message, initial string) (string, bool) {
			return message + "|" + initial, true
		},
		FormatRate: func(value float64, unit string) string {
			return `12 <span class="unit">` + unit + `</span>`
		},
	}
	s := New(doc, WithHooks(hooks))
	wrapped := s.Hooks()

	// Under the source language everything is identity.
	wrapped.Notify("服务运行中", "info")
	if notified[0] != "info:服务运行中" {
		t.Errorf("notify under source = %q", notified[0])
	}

	s.Switch(English)

	wrapped.Notify("服务运行中", "info")
	if notified[1] != "info:Service running" {
		t.Errorf("notify under en = %q", notified[1])
	}
	// Return values pass through untouched.
	if !wrapped.Confirm("重启服务") {
		t.Error("confirm must see the resolved message and return the host's answer")
	}
	if got, ok := wrapped.Prompt("语言", "8317"); !ok || got != "Language|8317" {
		t.Errorf("prompt = %q, %v; non-message arguments must pass through", got, ok)
	}
	if got := wrapped.FormatRate(12, "次/分钟"); got != `12 <span class="unit">req/min</span>` {
		t.Errorf("format rate = %q", got)
	}

	// Unregistered handlers stay nil, and are skipped silently.
	if wrapped.FormatSize != nil {
		t.Error("unregistered handler must remain nil")
	}
}
