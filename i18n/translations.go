package i18n

// Translations holds the user-facing strings of one language.
type Translations struct {
	PeriodResult       string
	ConsolidatedResult string
	TotalProfit        string
	ROI                string
	WinRate            string
	ActiveBets         string
	HistoryTitle       string
	NoBets             string
	Multiple           string
	Win                string
	Loss               string
	Void               string
	Pending            string
	IAAnalysisTitle    string
	IAPrompt           string
	IAError            string
	ImportSuccess      string
	ImportError        string
	TableDate          string
	TableEvent         string
	TableType          string
	TableOdds          string
	TableStake         string
	TableStatus        string
	TableProfit        string
	BankrollEvolution  string
}

// For returns the translations of the language, falling back to English.
func (l Lang) For() Translations {
	if t, ok := translations[l]; ok {
		return t
	}
	return translations[EN]
}

// StatusLabel returns the localized label of a raw status value.
func (t Translations) StatusLabel(status string) string {
	switch status {
	case "WIN":
		return t.Win
	case "LOSS":
		return t.Loss
	case "VOID":
		return t.Void
	default:
		return t.Pending
	}
}

var translations = map[Lang]Translations{
	EN: {
		PeriodResult:       "Period Result",
		ConsolidatedResult: "Consolidated Result",
		TotalProfit:        "Total Profit",
		ROI:                "ROI",
		WinRate:            "Win Rate",
		ActiveBets:         "Active Bets",
		HistoryTitle:       "Bet History",
		NoBets:             "No bets recorded for this period.",
		Multiple:           "Multiple",
		Win:                "Win",
		Loss:               "Loss",
		Void:               "Void",
		Pending:            "Pending",
		IAAnalysisTitle:    "AI Analysis",
		IAPrompt:           "As a professional sports-betting analyst, review the following bet history and give 3 practical tips to improve results. Consider bankroll management (varying stakes), average odds, and win/loss frequency. Answer concisely and professionally.",
		IAError:            "Could not generate insights right now. Watch your bankroll and stay disciplined.",
		ImportSuccess:      "Import finished successfully.",
		ImportError:        "Import failed: no valid rows found.",
		TableDate:          "Date",
		TableEvent:         "Event",
		TableType:          "Type",
		TableOdds:          "Odds",
		TableStake:         "Stake",
		TableStatus:        "Status",
		TableProfit:        "Profit",
		BankrollEvolution:  "Bankroll Evolution",
	},
	PT: {
		PeriodResult:       "Resultado do Período",
		ConsolidatedResult: "Resultado Consolidado",
		TotalProfit:        "Lucro Total",
		ROI:                "ROI",
		WinRate:            "Taxa de Acerto",
		ActiveBets:         "Apostas Ativas",
		HistoryTitle:       "Histórico de Apostas",
		NoBets:             "Nenhuma aposta registrada neste período.",
		Multiple:           "Múltipla",
		Win:                "Ganhou",
		Loss:               "Perdeu",
		Void:               "Anulada",
		Pending:            "Pendente",
		IAAnalysisTitle:    "Análise IA",
		IAPrompt:           "Como um analista profissional de apostas esportivas, analise o seguinte histórico de apostas e forneça 3 dicas práticas para melhorar os resultados. Considere gestão de banca (stakes variadas), odds médias e frequência de vitórias vs perdas. Responda de forma concisa e profissional.",
		IAError:            "Não foi possível gerar insights no momento. Verifique sua banca e mantenha a disciplina.",
		ImportSuccess:      "Importação concluída com sucesso.",
		ImportError:        "Falha na importação: nenhuma linha válida encontrada.",
		TableDate:          "Data",
		TableEvent:         "Evento",
		TableType:          "Tipo",
		TableOdds:          "Odds",
		TableStake:         "Valor",
		TableStatus:        "Estado",
		TableProfit:        "Lucro",
		BankrollEvolution:  "Evolução da Banca",
	},
	ES: {
		PeriodResult:       "Resultado del Período",
		ConsolidatedResult: "Resultado Consolidado",
		TotalProfit:        "Beneficio Total",
		ROI:                "ROI",
		WinRate:            "Tasa de Acierto",
		ActiveBets:         "Apuestas Activas",
		HistoryTitle:       "Historial de Apuestas",
		NoBets:             "No hay apuestas registradas en este período.",
		Multiple:           "Múltiple",
		Win:                "Ganada",
		Loss:               "Perdida",
		Void:               "Anulada",
		Pending:            "Pendiente",
		IAAnalysisTitle:    "Análisis IA",
		IAPrompt:           "Como analista profesional de apuestas deportivas, analiza el siguiente historial de apuestas y ofrece 3 consejos prácticos para mejorar los resultados. Considera la gestión del bankroll (stakes variados), las cuotas medias y la frecuencia de victorias y derrotas. Responde de forma concisa y profesional.",
		IAError:            "No se pudieron generar insights en este momento. Vigila tu banca y mantén la disciplina.",
		ImportSuccess:      "Importación completada con éxito.",
		ImportError:        "Error de importación: no se encontraron filas válidas.",
		TableDate:          "Fecha",
		TableEvent:         "Evento",
		TableType:          "Tipo",
		TableOdds:          "Cuotas",
		TableStake:         "Importe",
		TableStatus:        "Estado",
		TableProfit:        "Beneficio",
		BankrollEvolution:  "Evolución del Bankroll",
	},
	FR: {
		PeriodResult:       "Résultat de la Période",
		ConsolidatedResult: "Résultat Consolidé",
		TotalProfit:        "Profit Total",
		ROI:                "ROI",
		WinRate:            "Taux de Réussite",
		ActiveBets:         "Paris Actifs",
		HistoryTitle:       "Historique des Paris",
		NoBets:             "Aucun pari enregistré pour cette période.",
		Multiple:           "Combiné",
		Win:                "Gagné",
		Loss:               "Perdu",
		Void:               "Annulé",
		Pending:            "En attente",
		IAAnalysisTitle:    "Analyse IA",
		IAPrompt:           "En tant qu'analyste professionnel de paris sportifs, analysez l'historique de paris suivant et donnez 3 conseils pratiques pour améliorer les résultats. Tenez compte de la gestion de bankroll (mises variées), des cotes moyennes et de la fréquence des gains et des pertes. Répondez de manière concise et professionnelle.",
		IAError:            "Impossible de générer des insights pour le moment. Surveillez votre bankroll et restez discipliné.",
		ImportSuccess:      "Importation terminée avec succès.",
		ImportError:        "Échec de l'importation : aucune ligne valide trouvée.",
		TableDate:          "Date",
		TableEvent:         "Événement",
		TableType:          "Type",
		TableOdds:          "Cotes",
		TableStake:         "Mise",
		TableStatus:        "Statut",
		TableProfit:        "Profit",
		BankrollEvolution:  "Évolution de la Bankroll",
	},
	IT: {
		PeriodResult:       "Risultato del Periodo",
		ConsolidatedResult: "Risultato Consolidato",
		TotalProfit:        "Profitto Totale",
		ROI:                "ROI",
		WinRate:            "Percentuale di Vincita",
		ActiveBets:         "Scommesse Attive",
		HistoryTitle:       "Storico Scommesse",
		NoBets:             "Nessuna scommessa registrata in questo periodo.",
		Multiple:           "Multipla",
		Win:                "Vinta",
		Loss:               "Persa",
		Void:               "Annullata",
		Pending:            "In sospeso",
		IAAnalysisTitle:    "Analisi IA",
		IAPrompt:           "Come analista professionista di scommesse sportive, analizza il seguente storico di scommesse e fornisci 3 consigli pratici per migliorare i risultati. Considera la gestione del bankroll (puntate variabili), le quote medie e la frequenza di vittorie e sconfitte. Rispondi in modo conciso e professionale.",
		IAError:            "Impossibile generare insights al momento. Controlla il tuo bankroll e mantieni la disciplina.",
		ImportSuccess:      "Importazione completata con successo.",
		ImportError:        "Importazione fallita: nessuna riga valida trovata.",
		TableDate:          "Data",
		TableEvent:         "Evento",
		TableType:          "Tipo",
		TableOdds:          "Quote",
		TableStake:         "Puntata",
		TableStatus:        "Stato",
		TableProfit:        "Profitto",
		BankrollEvolution:  "Evoluzione del Bankroll",
	},
	DE: {
		PeriodResult:       "Periodenergebnis",
		ConsolidatedResult: "Gesamtergebnis",
		TotalProfit:        "Gesamtgewinn",
		ROI:                "ROI",
		WinRate:            "Trefferquote",
		ActiveBets:         "Aktive Wetten",
		HistoryTitle:       "Wetthistorie",
		NoBets:             "Keine Wetten in diesem Zeitraum.",
		Multiple:           "Kombiwette",
		Win:                "Gewonnen",
		Loss:               "Verloren",
		Void:               "Ungültig",
		Pending:            "Offen",
		IAAnalysisTitle:    "KI-Analyse",
		IAPrompt:           "Analysieren Sie als professioneller Sportwetten-Analyst die folgende Wetthistorie und geben Sie 3 praktische Tipps zur Verbesserung der Ergebnisse. Berücksichtigen Sie Bankroll-Management (variierende Einsätze), durchschnittliche Quoten sowie die Häufigkeit von Gewinnen und Verlusten. Antworten Sie prägnant und professionell.",
		IAError:            "Insights können derzeit nicht erstellt werden. Behalten Sie Ihre Bankroll im Blick und bleiben Sie diszipliniert.",
		ImportSuccess:      "Import erfolgreich abgeschlossen.",
		ImportError:        "Import fehlgeschlagen: keine gültigen Zeilen gefunden.",
		TableDate:          "Datum",
		TableEvent:         "Ereignis",
		TableType:          "Typ",
		TableOdds:          "Quoten",
		TableStake:         "Einsatz",
		TableStatus:        "Status",
		TableProfit:        "Gewinn",
		BankrollEvolution:  "Bankroll-Entwicklung",
	},
	AR: {
		PeriodResult:       "نتيجة الفترة",
		ConsolidatedResult: "النتيجة الإجمالية",
		TotalProfit:        "إجمالي الربح",
		ROI:                "العائد على الاستثمار",
		WinRate:            "معدل الفوز",
		ActiveBets:         "الرهانات النشطة",
		HistoryTitle:       "سجل الرهانات",
		NoBets:             "لا توجد رهانات مسجلة لهذه الفترة.",
		Multiple:           "مجمعة",
		Win:                "فوز",
		Loss:               "خسارة",
		Void:               "ملغاة",
		Pending:            "معلقة",
		IAAnalysisTitle:    "تحليل الذكاء الاصطناعي",
		IAPrompt:           "بصفتك محللًا محترفًا للرهانات الرياضية، حلل سجل الرهانات التالي وقدم 3 نصائح عملية لتحسين النتائج. ضع في الاعتبار إدارة رأس المال (تنوع قيم الرهان)، ومتوسط الاحتمالات، وتكرار الفوز مقابل الخسارة. أجب بإيجاز واحترافية.",
		IAError:            "تعذر إنشاء التحليلات حاليًا. راقب رصيدك وحافظ على الانضباط.",
		ImportSuccess:      "اكتمل الاستيراد بنجاح.",
		ImportError:        "فشل الاستيراد: لم يتم العثور على صفوف صالحة.",
		TableDate:          "التاريخ",
		TableEvent:         "الحدث",
		TableType:          "النوع",
		TableOdds:          "الاحتمالات",
		TableStake:         "قيمة الرهان",
		TableStatus:        "الحالة",
		TableProfit:        "الربح",
		BankrollEvolution:  "تطور رأس المال",
	},
}
