package shell

// HookSnippet는 셸 시작 시 기본 환경을 자동 활성화하는 rc 스니펫을 반환한다.
// 지원하지 않는 셸이면 빈 문자열. cmd는 rc 파일 개념이 없어 제외한다.
func HookSnippet(t Type) string {
	switch t {
	case Zsh:
		return `# envsw shell integration (zsh)
if command -v envsw >/dev/null 2>&1; then
  eval "$(envsw java use --shell zsh 2>/dev/null)"
  eval "$(envsw cc use --shell zsh 2>/dev/null)"
fi
`
	case Bash:
		return `# envsw shell integration (bash)
if command -v envsw >/dev/null 2>&1; then
  eval "$(envsw java use --shell bash 2>/dev/null)"
  eval "$(envsw cc use --shell bash 2>/dev/null)"
fi
`
	case Fish:
		return `# envsw shell integration (fish)
if command -v envsw >/dev/null 2>&1
  envsw java use --shell fish 2>/dev/null | source
  envsw cc use --shell fish 2>/dev/null | source
end
`
	case PowerShell:
		return `# envsw shell integration (powershell)
if (Get-Command envsw -ErrorAction SilentlyContinue) {
  envsw java use --shell powershell 2>$null | Out-String | Invoke-Expression
  envsw cc use --shell powershell 2>$null | Out-String | Invoke-Expression
}
`
	default:
		return ""
	}
}
