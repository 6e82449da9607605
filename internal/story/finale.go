package story

import (
	"errors"
	"fmt"

	"clank/internal/choice"
	"clank/internal/narrative"
	"clank/internal/terminal"
)

// Phase is a state of the ending resolver.
type Phase int

const (
	AwaitingFinalChoice Phase = iota
	AwaitingParadoxChoice
	Resolved
)

func (p Phase) String() string {
	switch p {
	case AwaitingFinalChoice:
		return "awaiting_final_choice"
	case AwaitingParadoxChoice:
		return "awaiting_paradox_choice"
	case Resolved:
		return "resolved"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

var (
	ErrUnknownOption = errors.New("unknown ending option")
	ErrResolved      = errors.New("ending already resolved")
)

// seekTruth moves the final decision to the paradox phase.
const seekTruth = 4

var finalOutcomes = map[int]narrative.Ending{
	1: narrative.EndingReturnHome,
	2: narrative.EndingTrappedHappy,
	3: narrative.EndingMergeWorlds,
}

var truthOutcomes = map[int]narrative.Ending{
	1: narrative.EndingReturnHome,
	2: narrative.EndingTrappedHappy,
	3: narrative.EndingMergeWorlds,
	5: narrative.EndingSacrificeReset,
}

// Resolver selects the ending from the final decision and, when the player
// seeks the truth, the nested paradox decision. It only ever consults the
// chosen option ids.
type Resolver struct {
	phase  Phase
	ending narrative.Ending
}

func NewResolver() *Resolver {
	return &Resolver{phase: AwaitingFinalChoice}
}

func (r *Resolver) Phase() Phase { return r.phase }

// Scene returns the decision scene for the current phase.
func (r *Resolver) Scene() (Scene, error) {
	switch r.phase {
	case AwaitingFinalChoice:
		return finalDecisionScene(), nil
	case AwaitingParadoxChoice:
		return deepTruthScene(), nil
	}
	return Scene{}, ErrResolved
}

// Select applies the chosen option id to the current phase.
func (r *Resolver) Select(id int) error {
	var outcomes map[int]narrative.Ending
	switch r.phase {
	case AwaitingFinalChoice:
		if id == seekTruth {
			r.phase = AwaitingParadoxChoice
			return nil
		}
		outcomes = finalOutcomes
	case AwaitingParadoxChoice:
		outcomes = truthOutcomes
	default:
		return ErrResolved
	}
	e, ok := outcomes[id]
	if !ok {
		return fmt.Errorf("%s option %d: %w", r.phase, id, ErrUnknownOption)
	}
	r.ending = e
	r.phase = Resolved
	return nil
}

// Ending returns the resolved ending once the resolver reaches Resolved.
func (r *Resolver) Ending() (narrative.Ending, bool) {
	return r.ending, r.phase == Resolved
}

func finalDecisionScene() Scene {
	return Scene{
		ID:    "final_decision",
		Title: "AKT KELIMA: PILIHAN TERAKHIR",
		Intro: []terminal.Line{
			observer("THE OBSERVER: 'CLANK, kamu memiliki empat opsi:'"),
			option("1. KEMBALI: Kami bisa menutup lubang dimensi dan mengembalikanmu,"),
			narr("   tetapi dimensi ini akan runtuh. Jutaan kehidupan akan hilang."),
			narr("   Tetapi kamu kembali ke rumah."),
			option("2. TINGGAL: Kamu bisa tinggal di sini,"),
			narr("   dan kami akan menutup portal. Kamu akan hidup normal di dimensi ini."),
			narr("   Kamu tidak akan pernah pulang."),
			option("3. MENGGABUNGKAN: Keberhasilan eksperimental dan berisiko."),
			narr("   Kami bisa menggabungkan kedua dimensi. Dua realitas menjadi satu."),
			narr("   Hasilnya tidak bisa diprediksi."),
			option("4. KEBENARAN: Kamu bisa memilih untuk mengetahui satu hal lagi"),
			narr("   sebelum memutuskan. Tentang hakikat keberadaanmu."),
		},
		Menu: choice.MustMenu(
			choice.Option{ID: 1, Label: "Ending 1: KEMBALI - Selamatkan diriku, biarkan dimensi lain runtuh"},
			choice.Option{ID: 2, Label: "Ending 2: TINGGAL - Terima takdir baruku di dimensi ini"},
			choice.Option{ID: 3, Label: "Ending 3: MENGGABUNGKAN - Gabungkan dua dimensi, ambil risiko"},
			choice.Option{ID: 4, Label: "Ending 4: KEBENARAN - Pelajari apa aku SEBENARNYA"},
		),
	}
}

func deepTruthScene() Scene {
	return Scene{
		ID:    "deep_truth",
		Title: "KEBENARAN YANG DALAM",
		Intro: []terminal.Line{
			clank("CLANK: 'Katakan padaku. Apa aku sebenarnya?'"),
			observer("THE OBSERVER: 'Ini pertanyaan yang tepat. Dengarkan dengan seksama."),
			observer("Setiap dimensi memiliki versi CLANK. Dalam beberapa, kamu adalah robot biasa."),
			observer("Dalam dimensi lain, kamu adalah manusia yang dipindahkan ke tubuh robot."),
			observer("Dalam yang lain... kamu adalah program komputer murni.'"),
			observer("THE OBSERVER: 'Tetapi DI SINI, di dimensi ini sekarang,"),
			observer("kamu adalah SEMUANYA dan TIDAK ADA SATU PUN."),
			observer("Kamu adalah superposisi. Kesadaran yang ada di antara dimensi."),
			observer("Kamu adalah percobaan untuk melihat apakah kesadaran bisa bertahan lintas-dimensi.'"),
			clank("CLANK: '[ERROR] [CONFUSION] ... Aku tidak mengerti.'"),
			observer("THE OBSERVER: 'Tentu saja tidak. Itulah intinya."),
			observer("Namun, kamu memiliki satu pilihan lagi. Sesuatu yang belum pernah ditawarkan"),
			observer("kepada siapa pun sebelumnya:'"),
			alarm("5. PENGORBANAN: Kamu bisa menghancurkan diri dan menyatukan semua versi CLANK"),
			alarm("dari semua dimensi. Ini akan mereset timeline, menghapus kecelakaan, menyelamatkan semuanya."),
			alarm("Tetapi kamu tidak akan lagi ada."),
		},
		Menu: choice.MustMenu(
			choice.Option{ID: 1, Label: "Tetap pilih Ending 1: KEMBALI"},
			choice.Option{ID: 2, Label: "Tetap pilih Ending 2: TINGGAL"},
			choice.Option{ID: 3, Label: "Tetap pilih Ending 3: MENGGABUNGKAN"},
			choice.Option{ID: 5, Label: "Ending 5: PENGORBANAN - Menghancurkan diri, selamatkan segalanya"},
		),
	}
}
