// Package scanner discovers JDK installations on the local filesystem and
// merges them into the environment registry. Scanning is read-only and never
// fails as a whole: inaccessible roots become warnings, not errors.
package scanner

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/hbjs97/envsw/internal/config"
)

// PathsEnvVar는 추가 스캔 루트를 담는 환경변수다. 경로 목록 구분자를 따른다.
const PathsEnvVar = "ENVSW_JAVA_PATHS"

// Candidate는 스캔 중에만 존재하는 JDK 후보다. 레지스트리에 병합될 때만
// JavaEnv로 승격되고, 그 자체로 저장되지는 않는다.
type Candidate struct {
	Path    string
	Version string
	Vendor  string
}

// fingerprint는 vendor+version 중복 판정 키다. 버전을 모르면 판정하지 않는다.
func (c Candidate) fingerprint() string {
	if c.Version == "" {
		return ""
	}
	return strings.ToLower(c.Vendor) + "|" + c.Version
}

// Name은 후보의 레지스트리 이름이다. 디렉토리 이름을 정리해 쓴다.
func (c Candidate) Name() string {
	name := filepath.Base(c.Path)
	name = strings.ReplaceAll(name, "jdk-", "jdk")
	name = strings.ReplaceAll(name, "jre-", "jre")
	return name
}

// Description은 병합 시 붙는 설명이다.
func (c Candidate) Description() string {
	v := c.Version
	if v == "" {
		v = "unknown"
	}
	return fmt.Sprintf("Java %s (%s)", v, c.Path)
}

// Options는 스캔 정책이다.
type Options struct {
	// KeepLast가 참이면 fingerprint가 겹칠 때 나중에 발견된 후보를 채택한다.
	// 기본은 먼저 발견된 쪽 유지다. 이 선후 규칙은 정책 선택이지 정합성
	// 요구사항이 아니다.
	KeepLast bool
}

// Result는 한 번의 스캔 결과다.
type Result struct {
	Candidates []Candidate
	Skipped    []string // 중복 등으로 버린 후보에 대한 설명
	Warnings   []string // 접근 불가 경로 등 비치명 경고
}

// platformRoots는 OS별 표준 JDK 설치 디렉토리다.
func platformRoots() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\Program Files\Java`,
			`C:\Program Files (x86)\Java`,
			`C:\Program Files\Eclipse Adoptium`,
			`C:\Program Files\Amazon Corretto`,
			`C:\Program Files\Microsoft\jdk`,
		}
	case "darwin":
		return []string{
			"/Library/Java/JavaVirtualMachines",
			"/System/Library/Java/JavaVirtualMachines",
			"/usr/local/java",
			"/opt/homebrew/Caskroom",
		}
	default:
		return []string{
			"/usr/lib/jvm",
			"/usr/local/java",
			"/opt/java",
			"/usr/java",
		}
	}
}

// javaExe는 JDK 홈 기준 java 실행 파일 경로다.
func javaExe(home string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(home, "bin", "java.exe")
	}
	return filepath.Join(home, "bin", "java")
}

// DefaultRoots는 표준 경로, 설정의 커스텀 경로, ENVSW_JAVA_PATHS,
// PATH에서 역산한 JDK 홈을 합친 스캔 루트 목록이다.
func DefaultRoots(cfg *config.Config) []string {
	roots := platformRoots()
	roots = append(roots, cfg.CustomJavaScanPaths...)
	if extra := os.Getenv(PathsEnvVar); extra != "" {
		roots = append(roots, filepath.SplitList(extra)...)
	}
	roots = append(roots, pathRoots(os.Getenv("PATH"))...)
	return roots
}

// pathRoots는 PATH의 각 디렉토리에서 java 실행 파일을 찾아, bin의 상위
// 디렉토리를 JDK 홈 후보로 돌려준다.
func pathRoots(pathVar string) []string {
	var roots []string
	for _, dir := range filepath.SplitList(pathVar) {
		if dir == "" {
			continue
		}
		exe := filepath.Join(dir, "java")
		if runtime.GOOS == "windows" {
			exe = filepath.Join(dir, "java.exe")
		}
		info, err := os.Stat(exe)
		if err != nil || info.IsDir() {
			continue
		}
		if filepath.Base(dir) == "bin" {
			roots = append(roots, filepath.Dir(dir))
		}
	}
	return roots
}

// Scan은 루트 목록을 훑어 JDK 후보를 수집한다. 각 루트는 자신이 JDK이거나,
// 아니면 한 단계 하위 디렉토리만 조사한다. 결과는 버전 내림차순으로 정렬된다.
func Scan(roots []string, opts Options) *Result {
	res := &Result{}
	seenPaths := make(map[string]bool)
	seenFPs := make(map[string]int) // fingerprint → Candidates 인덱스

	accept := func(c Candidate) {
		canonical := c.Path
		if resolved, err := filepath.EvalSymlinks(c.Path); err == nil {
			canonical = resolved
		}
		if seenPaths[canonical] {
			res.Skipped = append(res.Skipped, fmt.Sprintf("%s: 동일 설치 (경로 중복)", c.Path))
			return
		}
		if fp := c.fingerprint(); fp != "" {
			if i, ok := seenFPs[fp]; ok {
				if opts.KeepLast {
					res.Skipped = append(res.Skipped,
						fmt.Sprintf("%s: 동일 설치 (vendor+version 중복, 나중 발견 우선 정책)", res.Candidates[i].Path))
					res.Candidates[i] = c
					seenPaths[canonical] = true
				} else {
					res.Skipped = append(res.Skipped,
						fmt.Sprintf("%s: 동일 설치 (vendor+version 중복, 먼저 발견 우선 정책)", c.Path))
				}
				return
			}
			seenFPs[fp] = len(res.Candidates)
		}
		seenPaths[canonical] = true
		res.Candidates = append(res.Candidates, c)
	}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			if !os.IsNotExist(err) {
				res.Warnings = append(res.Warnings, fmt.Sprintf("%s: 접근 불가: %v", root, err))
			}
			continue
		}
		if !info.IsDir() {
			continue
		}
		if c, ok := probe(root); ok {
			accept(c)
			continue
		}
		entries, err := os.ReadDir(root)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: 읽기 실패: %v", root, err))
			continue
		}
		for _, entry := range entries {
			sub := filepath.Join(root, entry.Name())
			// 심볼릭 링크를 따라가야 하므로 entry.IsDir 대신 Stat을 쓴다
			subInfo, err := os.Stat(sub)
			if err != nil || !subInfo.IsDir() {
				continue
			}
			if c, ok := probe(sub); ok {
				accept(c)
			}
		}
	}

	sortCandidates(res.Candidates)
	return res
}

// probe는 경로가 JDK인지 확인하고 후보로 만든다.
// release 메타데이터 파일이 있거나 bin/java 실행 파일이 있으면 JDK로 본다.
func probe(path string) (Candidate, bool) {
	releasePath := filepath.Join(path, "release")
	_, relErr := os.Stat(releasePath)
	exeInfo, exeErr := os.Stat(javaExe(path))
	hasExe := exeErr == nil && !exeInfo.IsDir()
	if relErr != nil && !hasExe {
		return Candidate{}, false
	}

	version, vendor := readRelease(releasePath)
	if vendor == "" {
		vendor = vendorFromPath(path)
	}
	return Candidate{Path: path, Version: version, Vendor: vendor}, true
}

// readRelease는 JDK release 파일에서 JAVA_VERSION과 IMPLEMENTOR를 뽑는다.
// 파일이 없거나 못 읽으면 빈 값이다.
func readRelease(path string) (version, vendor string) {
	f, err := os.Open(path)
	if err != nil {
		return "", ""
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		switch {
		case strings.HasPrefix(line, "JAVA_VERSION="):
			version = strings.Trim(strings.TrimPrefix(line, "JAVA_VERSION="), `"`)
		case strings.HasPrefix(line, "IMPLEMENTOR="):
			vendor = strings.Trim(strings.TrimPrefix(line, "IMPLEMENTOR="), `"`)
		}
	}
	return version, vendor
}

// vendorFromPath는 경로 문자열의 단서로 배포사를 추정한다.
func vendorFromPath(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.Contains(lower, "adoptium"), strings.Contains(lower, "adoptopenjdk"), strings.Contains(lower, "temurin"):
		return "Eclipse Adoptium"
	case strings.Contains(lower, "corretto"), strings.Contains(lower, "amazon"):
		return "Amazon"
	case strings.Contains(lower, "microsoft"):
		return "Microsoft"
	case strings.Contains(lower, "oracle"):
		return "Oracle"
	case strings.Contains(lower, "zulu"):
		return "Azul Zulu"
	case strings.Contains(lower, "liberica"):
		return "BellSoft Liberica"
	default:
		return ""
	}
}

// sortCandidates는 버전 내림차순, 파싱 불가 버전은 뒤로, 같은 버전은 경로순.
func sortCandidates(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		vi, ei := goversion.NewVersion(cands[i].Version)
		vj, ej := goversion.NewVersion(cands[j].Version)
		switch {
		case ei == nil && ej == nil:
			if vi.Equal(vj) {
				return cands[i].Path < cands[j].Path
			}
			return vi.GreaterThan(vj)
		case ei == nil:
			return true
		case ej == nil:
			return false
		default:
			return cands[i].Path < cands[j].Path
		}
	})
}

// MergeInto는 후보를 레지스트리에 추가한다. 병합은 가산적이다:
// 같은 이름의 기존 항목(수동 추가 포함)은 보존하고 충돌로 보고하며,
// 삭제 목록에 오른 이름은 건너뛴다.
func (r *Result) MergeInto(cfg *config.Config) (added, skipped []string) {
	for _, c := range r.Candidates {
		name := c.Name()
		if cfg.IsJavaNameRemoved(name) {
			skipped = append(skipped, fmt.Sprintf("%s: 사용자가 삭제한 이름", name))
			continue
		}
		if _, err := cfg.GetJavaEnv(name); err == nil {
			skipped = append(skipped, fmt.Sprintf("%s: 이름 충돌로 건너뜀", name))
			continue
		}
		env := config.JavaEnv{
			Name:        name,
			JavaHome:    c.Path,
			Description: c.Description(),
			Source:      config.SourceScanned,
		}
		if err := cfg.AddJavaEnv(env); err != nil {
			skipped = append(skipped, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		added = append(added, name)
	}
	return added, skipped
}
