package cli

import (
	"github.com/hbjs97/envsw/internal/config"
	"github.com/hbjs97/envsw/internal/shell"
	"github.com/hbjs97/envsw/internal/switcher"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrNotFound는 이름에 해당하는 환경이 없을 때의 sentinel error다.
	ErrNotFound = config.ErrNotFound
	// ErrDuplicate는 같은 이름의 환경이 이미 있을 때의 sentinel error다.
	ErrDuplicate = config.ErrDuplicate
	// ErrParse는 설정 파일 파싱 실패의 sentinel error다.
	ErrParse = config.ErrParse
	// ErrUnsupportedShell은 알 수 없는 셸 지정의 sentinel error다.
	ErrUnsupportedShell = shell.ErrUnsupported
	// ErrNoDefault는 use를 이름 없이 호출했는데 기본 환경이 없을 때의 sentinel error다.
	ErrNoDefault = switcher.ErrNoDefault
)
