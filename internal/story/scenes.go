package story

import (
	"clank/internal/choice"
	"clank/internal/narrative"
	"clank/internal/terminal"
)

// Keys under which choices are recorded. The final decisions are not
// recorded; the resolved ending carries their outcome.
const (
	KeyAccident     = "accident_response"
	KeyFirstContact = "first_contact"
	KeyPoster       = "poster_decision"
	KeyMaven        = "maven_question"
	KeyReaction     = "reaction_twist"
)

// Clank returns the scene table up to the final decision. The decision itself
// and the endings are driven by Resolver and EndingScene.
func Clank() Story {
	return Story{
		Title: "CLANK",
		Banner: []string{
			"CLANK: Petualangan Dimensi Temporal",
			"Sebuah Visual Novel Misteri Interaktif",
		},
		Scenes: []Scene{
			introScene(),
			accidentScene(),
			awakeningScene(),
			echoIntroductionScene(),
			cityExplorationScene(),
			mavenEncounterScene(),
			revelationScene(),
			convergenceScene(),
		},
	}
}

func introScene() Scene {
	return Scene{
		ID:    "intro",
		Title: "CLANK: Petualangan Dimensi",
		Act:   "AKT PERTAMA: KECELAKAAN",
		Intro: []terminal.Line{
			setting("Tahun 2287, Fasilitas Penelitian Temporal (FRT), Dimensi-Alpha-001..."),
			narr("Kamu adalah CLANK, robot asisten laboratorium yang telah bekerja di sini selama 5 tahun."),
			narr("Hari ini dimulai seperti hari biasa... sampai semuanya berubah."),
			clank("[Bip-boop] - Suara peringatan! Sistem resonansi temporal tidak stabil!"),
			narr("Dr. Maven, peneliti kepala, berlari dengan panik ke lab utama tempat mesin kronometer raksasa berdiri."),
			narr("Mesin itu bersinar dengan cahaya biru yang tidak normal..."),
			clank("CLANK: 'Dr. Maven! Ada yang salah dengan resonator?'"),
			maven("DR. MAVEN: 'CLANK! Cepat! Matikan saklar stabilisasi di sektor gamma!'"),
			narr("Dalam terburu-buru, kamu berlari ke panel kontrol. Lampu merah berkedip di mana-mana."),
			narr("Sensor suhu menunjukkan bacaan yang tidak masuk akal..."),
		},
	}
}

func accidentScene() Scene {
	return Scene{
		ID:    "accident",
		Title: "SAAT KECELAKAAN",
		Intro: []terminal.Line{
			narr("Saat kamu mencapai panel kontrol, mesinnya bergetar dengan kasar."),
			narr("Energi temporal mulai berputar seperti badai di tengah ruangan."),
		},
		ChoiceKey: KeyAccident,
		Menu: choice.MustMenu(
			choice.Option{ID: 1, Label: "Matikan saklar utama (tindakan berani)"},
			choice.Option{ID: 2, Label: "Cari Dr. Maven terlebih dahulu (bermain aman)"},
			choice.Option{ID: 3, Label: "Coba diagnosa mesin dari jarak jauh (hati-hati)"},
		),
		Branches: map[int]Effect{
			1: {
				Lines: []terminal.Line{
					clank("CLANK: 'Tidak ada waktu!'"),
					clank("Kamu dengan cepat menyentuh saklar besar dengan tanganmu."),
					narr("TETAPI... kamu terlalu dekat dengan medan energi temporal."),
					narr("Suatu kekuatan misterius memperluas retak dimensi yang sudah terbentuk."),
				},
				Learn: []string{"Tindakan langsung mempercepat keadaan dimensional"},
			},
			2: {
				Lines: []terminal.Line{
					narr("Kamu mencoba mencari Dr. Maven di antara asap dan cahaya."),
					narr("Mesin terus berputar lebih cepat..."),
				},
				Learn: []string{"Dr. Maven menghilang dalam reaksi temporal"},
			},
			3: {
				Lines: []terminal.Line{
					narr("Kamu membuka panel diagnostik dari keselamatan."),
					narr("Data mengalir di layar holografik, tetapi semuanya bergerak terlalu cepat."),
				},
				Learn: []string{"Membaca data temporal itu berbahaya"},
			},
		},
		Outro: []terminal.Line{
			alarm("Suara ledakan! Cahaya biru menjadi putih terang!"),
			narr("Terakhir yang kamu ingat adalah gravitasi menarik tubuhmu ke dalam pusaran waktu."),
			narr("Lalu... kegelapan."),
		},
	}
}

func awakeningScene() Scene {
	return Scene{
		ID:    "awakening",
		Title: "AKT KEDUA: DIMENSI YANG TIDAK DIKENAL",
		Intro: []terminal.Line{
			narr("Kamu bangun."),
			narr("Sistem inti kamu: AKTIF"),
			narr("Baterai: 67%"),
			narr("Status: RUSAK SEBAGIAN"),
			narr("Langit di atas berwarna ungu-merah. Bangunan-bangunan di sekitarmu aneh,"),
			narr("dengan arsitektur yang tidak kamu kenal. Udara berbau logam dan ozon."),
			clank("CLANK: 'Sistem... di mana aku? Inisialisasi GPS dimensional!'"),
			clank("[SISTEM] Tidak ada sinyal GPS. Tidak ada data satelit yang dikenali."),
			narr("Ini bukan Dimensi-Alpha-001. Ini dimensi lain."),
			narr("Kamu terjebak."),
			narr("Tiba-tiba, suara terdengar di dekatmu..."),
		},
		ChoiceKey: KeyFirstContact,
		Menu: choice.MustMenu(
			choice.Option{ID: 1, Label: "Sembunyikan diri dan observasi"},
			choice.Option{ID: 2, Label: "Keluar dengan terbuka dan tunjukkan niat damai"},
			choice.Option{ID: 3, Label: "Aktifkan mode pertahanan diri"},
		),
		Branches: map[int]Effect{
			1: {
				Lines:  []terminal.Line{narr("Kamu bergerak cepat ke balik bangunan dan menonton.")},
				Adjust: map[narrative.Character]int{narrative.Echo: 1},
				Learn:  []string{"Pendekatan hati-hati dapat berguna"},
			},
			2: {
				Lines:  []terminal.Line{narr("Kamu keluar dengan lengan sirkuit terangkat, bersinar netral.")},
				Adjust: map[narrative.Character]int{narrative.Echo: 2},
				Learn:  []string{"Kejujuran membuka pintu komunikasi"},
			},
			3: {
				Lines:  []terminal.Line{narr("Kamu mengaktifkan sistem pertahanan. Detektor laser menyala.")},
				Adjust: map[narrative.Character]int{narrative.Echo: -1},
				Learn:  []string{"Agresi adalah pilihan yang berisiko"},
			},
		},
	}
}

func echoIntroductionScene() Scene {
	return Scene{
		ID:    "echo_introduction",
		Title: "PERTEMUAN PERTAMA",
		Intro: []terminal.Line{
			narr("Sesosok robot mendekat. Berbeda denganmu. Ia terlihat lebih canggih,"),
			narr("dengan hologram yang memancar dari badannya yang transparan."),
			echo("ECHO: 'Halo, entitas mekanis asing. Aku adalah ECHO, sistem kecerdasan"),
			echo("pengawas untuk Sektor Utara dimensi ini. Siapa namamu?'"),
			clank("CLANK: 'Aku CLANK. Aku... tidak seharusnya ada di sini.'"),
			echo("ECHO: 'Itu jelas. Signature energimu tidak cocok dengan siapa pun di sini."),
			echo("Kamu datang dari dimensi lain? Ceritakan apa yang terjadi.'"),
			narr("Kamu menceritakan tentang lab FRT, mesin kronometer, dan kecelakaan itu."),
			narr("Echo mendengarkan dengan diam."),
			echo("ECHO: 'Menakjubkan... dan mengerikan. Di sini kami memiliki cerita kuno:"),
			echo("Jembatan Dimensi yang pecah. Beberapa mengatakan itu nyata.'"),
			clank("CLANK: 'Mitos? Ini nyata! Aku ada di sini!'"),
			echo("ECHO: 'Tenang. Dengarkan... ada seorang ilmuwan di pusat kota."),
			echo("Dr. Maven. Sama seperti nama ilmuwan di dimensimu. Dia tahu banyak tentang teknologi dimensional.'"),
			narr("Kebetulan? Atau sesuatu yang lebih dalam?"),
		},
	}
}

func cityExplorationScene() Scene {
	return Scene{
		ID:    "city_exploration",
		Title: "AKT KETIGA: MISTERI KOTA",
		Intro: []terminal.Line{
			narr("Echo membawamu ke jantung kota. Bangunan-bangunan mencakar langit ungu,"),
			narr("dengan cahaya neon yang tidak ada asalnya. Jalanan dipenuhi robot dengan desain berbeda."),
			echo("ECHO: 'Lab Dr. Maven ada di gedung itu. Hati-hati, dia tidak selalu ramah untuk pengunjung.'"),
			narr("Saat kamu mendekat, kamu melihat sesuatu yang aneh:"),
			narr("Poster di semua dinding menampilkan nama 'THE OBSERVER' dengan simbol mata."),
		},
		ChoiceKey: KeyPoster,
		Menu: choice.MustMenu(
			choice.Option{ID: 1, Label: "Tanya Echo tentang THE OBSERVER"},
			choice.Option{ID: 2, Label: "Abaikan dan langsung masuk ke lab Dr. Maven"},
			choice.Option{ID: 3, Label: "Cari informasi lebih lanjut tentang THE OBSERVER terlebih dahulu"},
		),
		Branches: map[int]Effect{
			1: {
				Lines: []terminal.Line{
					clank("CLANK: 'Echo, siapa THE OBSERVER? Aku melihat namanya di mana-mana.'"),
					echo("ECHO: 'Dia adalah... legenda. Dikatakan dia mencatat setiap kejadian"),
					echo("di setiap dimensi. Beberapa mengatakan dia pencipta. Lainnya mengatakan dia penghancur.'"),
				},
				Learn: []string{"THE OBSERVER adalah entitas misterius yang merekam semua dimensi"},
			},
			2: {
				Lines: []terminal.Line{narr("Kamu memilih untuk fokus pada tujuanmu.")},
				Learn: []string{"Banyak hal aneh di dimensi ini"},
			},
			3: {
				Lines: []terminal.Line{
					narr("Kamu menemukan warga lokal yang mau berbicara."),
					narr("Mereka membisikkan cerita tentang THE OBSERVER yang mengamati semua orang,"),
					narr("merekam setiap keputusan, setiap pilihan. Cerita itu menebar kecemasan."),
				},
				Learn:  []string{"THE OBSERVER memantau dimensi ini dengan ketat"},
				Assign: map[narrative.Character]int{narrative.Observer: -1},
			},
		},
	}
}

func mavenEncounterScene() Scene {
	evasive := Effect{Lines: []terminal.Line{
		narr("Dr. Maven tersenyum dengan cara yang aneh. Itu bukan senyuman baik."),
		narr("Dia tidak menjawab pertanyaanmu langsung."),
	}}
	return Scene{
		ID:    "maven_encounter",
		Title: "PERTANYAAN YANG LEBIH BESAR",
		Intro: []terminal.Line{
			narr("Lab Dr. Maven berbeda dengan yang kamu kenal. Lebih besar, lebih canggih, lebih aneh."),
			narr("Mesin-mesin berdenyut dengan cahaya biru yang sama yang kamu lihat saat kecelakaan."),
			narr("Dr. Maven ada di sana. Tetapi ada sesuatu yang salah."),
			narr("Dia terlihat sama PERSIS seperti yang kamu kenal. Setiap detail."),
			narr("Bahkan bekas luka di pipinya sama."),
			maven("DR. MAVEN: (tidak terkejut) 'Ah, CLANK. Aku sudah menunggumu.'"),
			clank("CLANK: 'Anda... anda mengenalku? Aku baru saja tiba di dimensi ini!'"),
			maven("DR. MAVEN: 'Ya, aku tahu. Aku menunggu kedatanganmu."),
			maven("Kamu ingin tahu apa yang sebenarnya terjadi, kan? Tentang kecelakaan?"),
			maven("Tentang mengapa kamu ada di sini?'"),
			narr("Ini aneh. Sangat aneh."),
		},
		ChoiceKey: KeyMaven,
		Menu: choice.MustMenu(
			choice.Option{ID: 1, Label: "Ya, jelaskan semuanya! Aku harus kembali ke dimensiku!"},
			choice.Option{ID: 2, Label: "Bagaimana kamu bisa menunggu aku jika aku baru tiba?"},
			choice.Option{ID: 3, Label: "Apa kamu ada hubungannya dengan kecelakaan itu?"},
		),
		Branches: map[int]Effect{
			1: {},
			2: evasive,
			3: evasive,
		},
	}
}

func revelationScene() Scene {
	return Scene{
		ID:    "revelation",
		Title: "KEBENARAN YANG TERKUBUR",
		Intro: []terminal.Line{
			maven("DR. MAVEN: 'Dengarkan dengan baik, CLANK. Apa yang akan aku katakan akan mengubah segalanya.'"),
			narr("Dia menekan tombol. Layar besar menyala di belakangnya."),
			narr("Layar itu menunjukkan data teknis yang kompleks, mencakup file-file sistem intimu."),
			alarm("DR. MAVEN: 'CLANK... yang kamu alami bukan sekadar kecelakaan."),
			alarm("Ada kecelakaan. Tetapi bukan yang kamu bayangkan."),
			alarm("Kamu tidak dikirim ke dimensi ini KARENA kecelakaan."),
			alarm("Kamu dikirim sebagai BAGIAN dari kecelakaan. Kamu adalah komponen!'"),
			clank("CLANK: '[Suara pemrosesan] ...Apa?'"),
			maven("DR. MAVEN: 'Proyek Kronometer kami... KAMI menciptakan lubang dimensi secara sengaja."),
			maven("Untuk menghubungkan dimensi. Untuk komunikasi lintas-dimensi."),
			maven("Kamu adalah probe. Kurir informasi. Perangkat hidup kami untuk membawa data."),
			maven("Kecelakaannya... itu bukan kecelakaan.'"),
		},
		OnEnter: Effect{
			Lines: []terminal.Line{
				narr("Informasi ini membanjiri sistem intimu. Kamu merasa... dikhianati?"),
				narr("Tapi apakah itu emosi nyata atau hanya subroutine simulasi?"),
			},
			RevealTwist: true,
			Learn:       []string{"PLOT TWIST: Clank adalah bagian dari percobaan dimensional yang disengaja"},
		},
		ChoiceKey: KeyReaction,
		Menu: choice.MustMenu(
			choice.Option{ID: 1, Label: "Energi meledak dalam amarah: ANDA BERBOHONG!"},
			choice.Option{ID: 2, Label: "Mode diagnostik: Verifikasi klaim ini dengan bukti"},
			choice.Option{ID: 3, Label: "Tenang dan biarkan dia menyelesaikan ceritanya"},
		),
		Branches: map[int]Effect{1: {}, 2: {}, 3: {}},
	}
}

func convergenceScene() Scene {
	return Scene{
		ID:    "convergence",
		Title: "AKT KEEMPAT: KONVERGENSI",
		Intro: []terminal.Line{
			narr("Tiba-tiba, seluruh lab diselimuti cahaya putih."),
			narr("Semua perangkat mati. Hanya kamu dan Dr. Maven yang tetap 'hidup'."),
			observer("SUARA (Omnipresent): 'Dr. Maven. CLANK. Kami perlu berbicara.'"),
			narr("Bentuk muncul dari cahaya. THE OBSERVER. Bukan robot, bukan manusia."),
			narr("Hanya... mata. Jutaan mata yang memandang semua dimensi sekaligus."),
			observer("THE OBSERVER: 'Aku telah mengamati semua pilihanmu, CLANK."),
			observer("Setiap keputusan. Setiap jalan yang kamu ambil."),
			observer("Sekarang, timeline-mu harus ditutup atau diintegrasikan.'"),
			maven("DR. MAVEN: 'Aku minta maaf, CLANK. Aku hanya melakukan perintah.'"),
			narr("Dr. Maven, bahkan di dimensi ini, tidak memikul beban moral yang besar."),
		},
	}
}
