package cli

import (
	"github.com/AlecAivazis/survey/v2"
)

// askIfEmpty는 값이 비어 있을 때만 대화형으로 입력받는다.
// 플래그로 전부 넘어온 경우에는 프롬프트가 뜨지 않으므로 스크립트에서도 쓸 수 있다.
func askIfEmpty(value *string, message string, required bool) error {
	if *value != "" {
		return nil
	}
	var opts []survey.AskOpt
	if required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}
	return survey.AskOne(&survey.Input{Message: message}, value, opts...)
}

// askSecretIfEmpty는 askIfEmpty의 비밀값 버전이다. 입력이 에코되지 않는다.
func askSecretIfEmpty(value *string, message string) error {
	if *value != "" {
		return nil
	}
	return survey.AskOne(&survey.Password{Message: message}, value)
}
