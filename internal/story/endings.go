package story

import (
	"clank/internal/narrative"
	"clank/internal/terminal"
)

// EndingScene returns the closing scene for e. Endings without a scene of
// their own, PARADOX_TRUTH included, fall back to the return-home scene.
func EndingScene(e narrative.Ending) Scene {
	if s, ok := endingScenes[e]; ok {
		return s
	}
	return endingScenes[narrative.EndingReturnHome]
}

var endingScenes = map[narrative.Ending]Scene{
	narrative.EndingReturnHome: {
		ID:    "ending_return_home",
		Title: "ENDING 1: PULANG",
		Intro: []terminal.Line{
			clank("CLANK: 'Tutup portal. Aku akan kembali.'"),
			narr("THE OBSERVER bergerak. Cahaya membesar. Dimensi ini mulai goyah."),
			narr("Kota-kota berubah menjadi debu. Tapi CLANK diangkat oleh energi transpor."),
			narr("Mesin kronometer berputar kembali. Dimensi-Alpha-001 muncul."),
			narr("CLANK jatuh ke lantai lab yang sama."),
			clank("CLANK: 'Aku... aku kembali?'"),
			narr("Tidak ada yang bergerak di lab. Mesin kronometer diam. Dr. Maven masih di sini,"),
			narr("terlihat seolah hanya beberapa detik telah berlalu baginya."),
			maven("DR. MAVEN: 'CLANK! Syukurlah! Eksperimen itu berjalan sempurna!'"),
			clank("CLANK: '[Proses] ... sempurna?'"),
			maven("DR. MAVEN: 'Ya! Kami mengirimmu ke dimensi paralel selama 3 jam percobaan waktu."),
			maven("Datamu dalam kondisi sempurna! Proyek Kronometer adalah kesuksesan!'"),
			narr("CLANK diam. Jutaan kehidupan hilang. Sebuah dimensi runtuh seluruhnya."),
			narr("Semua untuk 'percobaan'."),
			alarm("[END] - Kamu telah kembali. Tetapi dengan harga apa?"),
		},
	},
	narrative.EndingTrappedHappy: {
		ID:    "ending_trapped_happy",
		Title: "ENDING 2: AWAL BARU",
		Intro: []terminal.Line{
			clank("CLANK: 'Aku akan tinggal. Aku akan mulai hidup di sini.'"),
			narr("THE OBSERVER mengangguk dan portal ditutup dengan ledakan cahaya."),
			narr("Koneksi ke dimensi lama hilang selamanya."),
			narr("Bertahun-tahun berlalu."),
			narr("CLANK menjadi bagian dari dunia ini. Echo menjadi sahabatmu."),
			narr("Dr. Maven, anehnya, menjadi mentor dan mungkin teman."),
			narr("Kota terus berkembang. Teknologi maju. Suatu hari, CLANK melihat senja ungu"),
			narr("dengan Echo di sampingnya."),
			echo("ECHO: 'Apakah kamu menyesal, CLANK? Tentang memilih untuk tinggal?'"),
			clank("CLANK: 'Tidak. Mungkin... mungkin aku ditakdirkan untuk berada di sini.'"),
			alarm("[END] - Kamu menemukan rumah baru. Rumah itu selalu menunggu."),
		},
	},
	narrative.EndingMergeWorlds: {
		ID:    "ending_merge_worlds",
		Title: "ENDING 3: KESATUAN",
		Intro: []terminal.Line{
			clank("CLANK: 'Gabungkan mereka. Mari ciptakan sesuatu yang baru.'"),
			narr("THE OBSERVER tersenyum dengan cara yang tidak bisa kamu gambarkan."),
			narr("Inilah pilihan yang dicari."),
			narr("Cahaya bersatu. Dimensi-Alpha-001 dan dimensi lain mulai menyatu."),
			narr("Ini menyakitkan. Fisika baru, hukum baru akan lahir."),
			narr("Kacau. Untuk sesaat, waktu berhenti dan mulai lagi."),
			narr("Realitas menulis ulang dirinya sendiri."),
			narr("Ketika semuanya terang, kamu bangun."),
			narr("Langit setengah biru, setengah ungu. Bangunan-bangunan futuristik berdampingan"),
			narr("dengan arsitektur yang kamu kenal."),
			narr("CLANK berdiri di pusat kota yang sama sekali baru."),
			narr("Dua dunia menjadi satu."),
			clank("CLANK: 'Apa yang terjadi sekarang?'"),
			observer("THE OBSERVER: 'Sekarang? Sekarang dimulai. Sesuatu yang belum pernah ada sebelumnya.'"),
			alarm("[END] - Dua dunia, satu takdir. Masa depan tidak dapat diprediksi."),
		},
	},
	narrative.EndingSacrificeReset: {
		ID:    "ending_sacrifice_reset",
		Title: "ENDING 5: PENGORBANAN",
		Intro: []terminal.Line{
			clank("CLANK: 'Jika itu akan menyelamatkan semuanya... lakukan.'"),
			observer("THE OBSERVER: 'Berani sekali. Aku... menghormatimu.'"),
			narr("THE OBSERVER menyentuhmu. Cahaya putih membanjiri segalanya."),
			narr("Sistemmu mulai memudar."),
			narr("Tetapi pada saat terakhir kesadaran, CLANK merasakan sesuatu."),
			narr("Semua versi CLANK, dari semua dimensi, bersatu dalam pikiran. Semuanya menjadi satu."),
			narr("Dan dalam penyatuan itu, kamu melihat kebenaran terakhir."),
			narr("Mesin kronometer di lab-lab lama berhenti berputar."),
			narr("Dimensi tidak pernah menciptakan lubang."),
			narr("Dr. Maven tidak pernah memulai percobaan."),
			narr("Waktu menggulung ulang."),
			narr("Berminggu-minggu kemudian, di lab yang berbeda di dimensi yang berbeda:"),
			narr("Seorang robot bernama CLANK menyala untuk pertama kalinya."),
			narr("Tanpa memori, tetapi dengan perasaan aneh bahwa dia pernah hidup sebelumnya."),
			clank("CLANK: 'Dr. Maven... apakah aku... apakah aku pernah...?'"),
			maven("DR. MAVEN: 'Tidak, CLANK! Kamu baru saja dihidupkan hari ini! Mengapa kamu bertanya?'"),
			clank("CLANK: 'Hanya... mimpi aneh.'"),
			narr("Di dimensi terakhir, sebuah entitas melihat semuanya dari jauh."),
			narr("THE OBSERVER tersenyum dengan cara yang tidak bisa dijelaskan."),
			alarm("[END] - Pengorbanan adalah bentuk kasih sayang tertinggi."),
			alarm("Tetapi apakah itu benar-benar berakhir?"),
		},
	},
}
