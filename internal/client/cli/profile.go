package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/poken-app/poken/internal/client/services"
	"github.com/poken-app/poken/internal/profile"
)

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

func (a *App) showProfile() {
	p := a.session.Profile

	fmt.Fprintln(a.out, "名前:   ", orPlaceholder(p.Name, "名前未設定"))
	fmt.Fprintln(a.out, "メール: ", orPlaceholder(p.Email, "未設定"))
	fmt.Fprintln(a.out, "職種:   ", orPlaceholder(p.Role, "未設定"))
	fmt.Fprintln(a.out, "状況:   ", p.Status.Label())
	fmt.Fprintln(a.out, "        ", p.Status.Description())
	if p.Notes != "" {
		fmt.Fprintln(a.out, "メモ:   ", p.Notes)
	}
}

// editField prompts with the current value; an empty answer keeps it.
func (a *App) editField(label, current string) string {
	text, err := GetSimpleText(a.reader, fmt.Sprintf("%s [%s]", label, orPlaceholder(current, "未設定")), a.out)
	if err != nil || text == "" {
		return current
	}
	return text
}

func (a *App) editProfile(ctx context.Context) {
	edited := a.session.Profile

	edited.Name = a.editField("名前", edited.Name)
	edited.Email = a.editField("メール", edited.Email)
	edited.Role = a.editField("職種", edited.Role)
	edited.Notes = a.editField("メモ", edited.Notes)
	edited.Status = a.editStatus(edited.Status)

	a.reportOutcome(a.sync.WriteOnEdit(ctx, edited))
}

func (a *App) editStatus(current profile.Status) profile.Status {
	statuses := []profile.Status{
		profile.StatusDocumentScreening,
		profile.StatusFirstInterview,
		profile.StatusSecondInterview,
		profile.StatusFinalInterview,
		profile.StatusOffer,
	}
	for i, s := range statuses {
		fmt.Fprintf(a.out, "  %d) %s\n", i+1, s.Label())
	}

	text, err := GetSimpleText(a.reader, fmt.Sprintf("状況 [%s]", current.Label()), a.out)
	if err != nil || text == "" {
		return current
	}
	var n int
	if _, err := fmt.Sscanf(text, "%d", &n); err != nil || n < 1 || n > len(statuses) {
		fmt.Fprintln(a.out, "無効な選択です。現在の状況を維持します。")
		return current
	}
	return statuses[n-1]
}

func (a *App) updateAvatar(ctx context.Context, path string) {
	image, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	a.reportOutcome(a.sync.UpdateAvatar(ctx, image))
}

func (a *App) reportOutcome(result services.SyncResult) {
	switch {
	case result.Outcome == services.OutcomeSynced:
		a.Toast("プロフィールを更新しました。", services.ToastInfo)
	case result.RemoteErr != nil:
		a.Toast("サーバーに保存できなかったため、この端末にのみ保存しました。", services.ToastWarning)
	default:
		a.Toast("ログインしていないため、この端末にのみ保存しました。", services.ToastInfo)
	}
}
