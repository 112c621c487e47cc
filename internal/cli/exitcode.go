package cli

// ExitCode는 envsw의 종료 코드다. 성공 0, 그 외 모든 실패는 1로 수렴한다.
// 호출 셸 hook이 exit code를 분기하지 않으므로 세분화하지 않는다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
)

// MapExitCode는 에러를 종료 코드로 바꾼다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	return ExitGeneral
}
