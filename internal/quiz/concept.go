package quiz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chemiz/chemiz/internal/answer"
)

// ChoiceCount is the number of options in a multiple-choice question.
const ChoiceCount = 4

// ConceptEntry is one canned question of the concept bank. Answer must be
// one of Options; it is also the expected short answer.
type ConceptEntry struct {
	ID          string
	Prompt      string
	Options     [ChoiceCount]string
	Answer      string
	Explanation string
}

var defaultBank = []ConceptEntry{
	{
		ID:          "bond-co2",
		Prompt:      "이산화탄소 분자에서 탄소와 산소 사이의 결합은?",
		Options:     [ChoiceCount]string{"단일 결합", "이중 결합", "삼중 결합", "이온 결합"},
		Answer:      "이중 결합",
		Explanation: "CO2는 O=C=O 구조로 탄소가 두 산소와 각각 이중 결합을 이룬다.",
	},
	{
		ID:          "shape-nh3",
		Prompt:      "암모니아(NH3)의 분자 모양은?",
		Options:     [ChoiceCount]string{"평면 삼각형", "삼각뿔형", "정사면체형", "직선형"},
		Answer:      "삼각뿔형",
		Explanation: "N에 비공유 전자쌍 1쌍이 있어 전자쌍 반발로 삼각뿔형이 된다.",
	},
	{
		ID:          "shape-h2o",
		Prompt:      "물(H2O)의 분자 모양은?",
		Options:     [ChoiceCount]string{"직선형", "굽은형", "삼각뿔형", "평면 삼각형"},
		Answer:      "굽은형",
		Explanation: "O에 비공유 전자쌍 2쌍이 있어 결합각이 약 104.5°인 굽은형이다.",
	},
	{
		ID:          "hybrid-c2h2",
		Prompt:      "에타인(C2H2)에서 탄소 원자의 혼성 오비탈은?",
		Options:     [ChoiceCount]string{"sp", "sp2", "sp3", "dsp2"},
		Answer:      "sp",
		Explanation: "삼중 결합을 가진 탄소는 sp 혼성으로 직선형 구조를 이룬다.",
	},
	{
		ID:          "hybrid-c2h4",
		Prompt:      "에텐(C2H4)에서 탄소 원자의 혼성 오비탈은?",
		Options:     [ChoiceCount]string{"sp", "sp2", "sp3", "sp3d"},
		Answer:      "sp2",
		Explanation: "이중 결합을 가진 탄소는 sp2 혼성으로 평면 구조를 이룬다.",
	},
	{
		ID:          "angle-ch4",
		Prompt:      "메테인(CH4)의 결합각은 약 몇 도인가?",
		Options:     [ChoiceCount]string{"90°", "104.5°", "107°", "109.5°"},
		Answer:      "109.5°",
		Explanation: "중심 원자에 비공유 전자쌍이 없는 정사면체형이므로 109.5°이다.",
	},
	{
		ID:          "polar-molecule",
		Prompt:      "다음 중 극성 분자는?",
		Options:     [ChoiceCount]string{"CO2", "CH4", "H2O", "O2"},
		Answer:      "H2O",
		Explanation: "H2O는 굽은형이라 결합 쌍극자가 상쇄되지 않아 극성을 띤다.",
	},
	{
		ID:          "functional-group-aldehyde",
		Prompt:      "포름알데히드(HCHO)가 가진 작용기는?",
		Options:     [ChoiceCount]string{"하이드록시기", "카복실기", "폼일기", "아미노기"},
		Answer:      "폼일기",
		Explanation: "알데하이드는 –CHO(폼일기)를 가진다.",
	},
	{
		ID:          "functional-group-acid",
		Prompt:      "아세트산(CH3COOH)이 가진 작용기는?",
		Options:     [ChoiceCount]string{"카복실기", "에스터기", "하이드록시기", "폼일기"},
		Answer:      "카복실기",
		Explanation: "–COOH를 카복실기라 하며 수용액에서 H⁺를 내놓아 산성을 띤다.",
	},
	{
		ID:          "bond-nacl",
		Prompt:      "염화나트륨(NaCl)을 이루는 화학 결합은?",
		Options:     [ChoiceCount]string{"공유 결합", "이온 결합", "금속 결합", "수소 결합"},
		Answer:      "이온 결합",
		Explanation: "금속 양이온 Na⁺와 비금속 음이온 Cl⁻ 사이의 정전기적 인력이다.",
	},
	{
		ID:          "lone-pair-hcn",
		Prompt:      "시안화수소(HCN)에서 N 원자의 비공유 전자쌍 수는?",
		Options:     [ChoiceCount]string{"0", "1", "2", "3"},
		Answer:      "1",
		Explanation: "N은 C와 삼중 결합을 이루고 비공유 전자쌍 1쌍을 가진다.",
	},
	{
		ID:          "hbond-water",
		Prompt:      "물의 끓는점이 비슷한 분자량의 분자보다 높은 주된 이유는?",
		Options:     [ChoiceCount]string{"이온 결합", "수소 결합", "금속 결합", "분산력"},
		Answer:      "수소 결합",
		Explanation: "물 분자 사이의 수소 결합을 끊는 데 많은 에너지가 필요하다.",
	},
}

// DefaultBank returns a copy of the built-in concept bank.
func DefaultBank() []ConceptEntry {
	out := make([]ConceptEntry, len(defaultBank))
	copy(out, defaultBank)
	return out
}

// ErrEmptyBank is returned when a concept bank has no entries.
var ErrEmptyBank = errors.New("concept bank is empty")

// ValidateBank checks that every entry has a prompt, four distinct options
// and an answer that is one of them.
func ValidateBank(bank []ConceptEntry) error {
	if len(bank) == 0 {
		return ErrEmptyBank
	}

	var errs []string
	ids := make(map[string]bool, len(bank))
	for i, e := range bank {
		label := e.ID
		if label == "" {
			label = fmt.Sprintf("entry %d", i)
		}
		if e.ID != "" {
			if ids[e.ID] {
				errs = append(errs, fmt.Sprintf("duplicate concept ID %q", e.ID))
			}
			ids[e.ID] = true
		}
		if strings.TrimSpace(e.Prompt) == "" {
			errs = append(errs, fmt.Sprintf("%s: prompt is empty", label))
		}

		seen := make(map[string]bool, ChoiceCount)
		hasAnswer := false
		for _, opt := range e.Options {
			key := answer.KoreanKey(opt)
			if key == "" {
				errs = append(errs, fmt.Sprintf("%s: empty option", label))
				continue
			}
			if seen[key] {
				errs = append(errs, fmt.Sprintf("%s: duplicate option %q", label, opt))
			}
			seen[key] = true
			if answer.ExactMatch(opt, e.Answer) {
				hasAnswer = true
			}
		}
		if !hasAnswer {
			errs = append(errs, fmt.Sprintf("%s: answer %q is not among the options", label, e.Answer))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("concept bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
