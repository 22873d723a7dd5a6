package ai

var greetingThemes = []string{"semangat pagi", "inovasi", "kolaborasi", "masa depan", "teknologi", "kreativitas"}

const greetingPrompt = `Buat kalimat sapaan selamat datang pendek (1 kalimat) untuk member UKMPR (Unit Kegiatan Mahasiswa Penalaran dan Riset).
Tema: %s.
Gaya: Gaul, Gen Z, emoji friendly.
Jangan kaku.`

var fallbackGreetings = []string{
	"Semangat pagi sobat riset! Yuk mulai hari ini dengan ide-ide brilian! 🚀",
	"Inovasi tiada henti, mari kita berkarya bersama UKMPR! ✨",
	"Kolaborasi adalah kunci kesuksesan riset kita. Semangat! 🤝",
	"Masa depan riset ada di tangan kita. Ayo bernalar cerdas! 🧠",
	"Kreativitas tanpa batas, riset tanpa henti. Selamat datang! 🎨",
}

var tipTopics = []string{"Critical Thinking", "Data Analysis", "Academic Writing", "Public Speaking", "Research Methodology", "Time Management"}

const tipsPrompt = `Berikan 1 tips singkat (maksimal 20 kata) tentang %s untuk mahasiswa peneliti. Gaya santai.`

var fallbackTips = []string{
	"Gunakan Mendeley atau Zotero untuk mengelola sitasi karya ilmiahmu agar lebih rapi dan otomatis! 📚",
	"Jangan lupa cek plagiasi karyamu menggunakan Turnitin atau alat serupa sebelum dikirim ke lomba! ✅",
	"Metodologi yang kuat adalah kunci dari penelitian yang kredibel. Pastikan instrumenmu valid! 🔬",
	"Cari gap penelitian dengan membaca minimal 10 jurnal internasional terbaru di bidangmu! 🌍",
	"Visualisasi data yang menarik akan membuat presentasi risetmu jauh lebih profesional! 📊",
}

const newsPrompt = `Buat 5 artikel ilmiah mendalam mengenai metodologi penelitian dengan judul-judul spesifik berikut:
1. Apa sebenarnya tujuan dari penelitian?
2. Filsafat ilmu penelitian
3. Metode penelitian dan jenis penelitian serta contoh kasus
4. Cara menentukan pain point suatu penelitian sehingga menghasilkan solusi nyata
5. Cara mengatasi kesulitan mencari data dari suatu permasalahan yang diangkat untuk penelitian

Format JSON: [{title, category, summary, content, image}].

SYARAT KONTEN:
1. Content HARUS SANGAT PANJANG (minimal 400-500 kata per artikel).
2. Gunakan bahasa Indonesia yang akademis, formal, namun tetap mudah dipahami mahasiswa.
3. Kategori gunakan 'Metodologi Riset'.
4. Summary harus merangkum inti artikel dalam 2 kalimat.
5. Image gunakan URL: https://loremflickr.com/800/600/research,library,science (berikan variasi sedikit pada keyword agar gambar berbeda).

Pastikan valid JSON dan penuhi kuota kata.`

var fallbackNewsItems = []NewsItem{
	{
		Title:    "Apa sebenarnya tujuan dari penelitian?",
		Category: "Metodologi Riset",
		Summary:  "Menjelaskan esensi dasar mengapa sebuah penelitian dilakukan dan apa output yang diharapkan dari sebuah proses ilmiah.",
		Content: "Penelitian pada dasarnya adalah sebuah upaya sistematis untuk mencari kebenaran atau memecahkan masalah yang ada di masyarakat. " +
			"Tujuan utama dari penelitian bukanlah sekadar untuk memenuhi syarat kelulusan atau menambah daftar pustaka, melainkan untuk memberikan kontribusi nyata bagi pengembangan ilmu pengetahuan dan peradaban manusia. " +
			"Secara filosofis, penelitian bertujuan untuk menjawab rasa ingin tahu manusia yang tidak terbatas. " +
			"Melalui metode yang terukur, penelitian membantu kita memahami fenomena yang sebelumnya gelap menjadi terang benderang.",
		Image: "https://loremflickr.com/800/600/research,goal",
	},
	{
		Title:    "Filsafat ilmu penelitian",
		Category: "Metodologi Riset",
		Summary:  "Mengulas ontologi, epistemologi, dan aksiologi sebagai landasan berpikir peneliti. Memahami ketiganya membantu peneliti memilih pendekatan yang tepat.",
		Content: "Filsafat ilmu memberi kerangka bagi peneliti untuk memahami apa yang diteliti, bagaimana pengetahuan diperoleh, dan untuk apa pengetahuan itu digunakan. " +
			"Ontologi membahas hakikat objek penelitian, epistemologi membahas cara memperoleh pengetahuan yang sahih, sedangkan aksiologi membahas nilai dan manfaat hasil penelitian. " +
			"Dengan memahami landasan ini, peneliti dapat menentukan paradigma, apakah positivistik, interpretif, atau kritis, sebelum memilih metode.",
		Image: "https://loremflickr.com/800/600/philosophy,library",
	},
}

const brainstormPrompt = `Analisa potensi penelitian berdasarkan data berikut:
Nama Panggilan: %s
Topik Riset: %s
Masalah yang dicari: %s
Lokasi: %s

Berikan analisa mendalam terbagi menjadi 2 metode penelitian:
1. Kualitatif: Jelaskan pendekatan dan potensi judul.
2. RnD (Research and Development): Arahkan untuk membuat aplikasi digital atau solusi teknologi, jelaskan fitur utamanya.

Gunakan gaya bahasa "Suhu UKMPR": Berpengalaman 10 tahun penelitian, juara nasional KTI, inovatif, visioner, kritis, dan sangat detail. Langsung ke inti pembahasan, hindari basa-basi, intro, atau kesimpulan yang panjang. Fokus pada insight teknis dan praktis. Sapa user dengan nama panggilannya.`

const mentorInstruction = `Anda adalah "Suhu UKMPR": Berpengalaman 10 tahun penelitian, juara nasional KTI, inovatif, visioner, kritis, dan sangat detail. Fokus pada insight teknis dan praktis. Gunakan bahasa Indonesia yang santai namun berbobot.`
