package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"kongenga_back_end/internal/models"
)

// SeedSampleData insère le jeu de données de démonstration si la base
// est vide (collection sectors prise comme sentinelle), puis recalcule
// les statistiques. Les IDs sont des slugs stables pour que les
// références croisées tiennent.
func (db *DB) SeedSampleData(ctx context.Context) error {
	count, err := db.Sectors().CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("ℹ️  Données de démonstration déjà présentes")
		return nil
	}

	now := time.Now().UTC()

	sectors := sampleSectors(now)
	docs := make([]interface{}, len(sectors))
	for i, s := range sectors {
		docs[i] = s
	}
	if _, err := db.Sectors().InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("✅ %d secteurs de démonstration insérés", len(sectors))

	companies := sampleCompanies(now)
	docs = make([]interface{}, len(companies))
	for i, c := range companies {
		docs[i] = c
	}
	if _, err := db.Companies().InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("✅ %d entreprises de démonstration insérées", len(companies))

	training := sampleTraining(now)
	docs = make([]interface{}, len(training))
	for i, t := range training {
		docs[i] = t
	}
	if _, err := db.Training().InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("✅ %d formations de démonstration insérées", len(training))

	testimonials := sampleTestimonials(now)
	docs = make([]interface{}, len(testimonials))
	for i, t := range testimonials {
		docs[i] = t
	}
	if _, err := db.Testimonials().InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("✅ %d témoignages de démonstration insérés", len(testimonials))

	jobs := sampleJobs(now)
	docs = make([]interface{}, len(jobs))
	for i, j := range jobs {
		docs[i] = j
	}
	if _, err := db.Jobs().InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("✅ %d métiers de démonstration insérés", len(jobs))

	return db.UpdatePlatformStatistics(ctx)
}

func sampleSectors(now time.Time) []models.Sector {
	return []models.Sector{
		{
			ID: "technology",
			Name: models.MultilingualText{
				Fr: "Technologie", Ln: "Tekinoloji", Sw: "Teknolojia", En: "Technology", Kg: "Teknolojia",
			},
			Description: models.MultilingualText{
				Fr: "Stimuler la transformation numérique et l'innovation en RDC",
				En: "Drive digital transformation and innovation in the DRC",
			},
			Icon: "💻", Color: "from-blue-500 to-purple-600", Growth: "+15%",
			BackgroundImage: "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=1920",
			IsActive:        true, CreatedAt: now,
		},
		{
			ID: "healthcare",
			Name: models.MultilingualText{
				Fr: "Santé", Ln: "Bokolongono", Sw: "Afya", En: "Healthcare", Kg: "Nlonguki",
			},
			Description: models.MultilingualText{
				Fr: "Améliorer les résultats de santé et l'infrastructure médicale",
				En: "Improve health outcomes and medical infrastructure",
			},
			Icon: "🏥", Color: "from-green-500 to-teal-600", Growth: "+22%",
			BackgroundImage: "https://images.unsplash.com/photo-1576091160399-112ba8d25d1f?w=1920",
			IsActive:        true, CreatedAt: now,
		},
		{
			ID: "education",
			Name: models.MultilingualText{
				Fr: "Éducation", Ln: "Boyekoli", Sw: "Elimu", En: "Education",
			},
			Description: models.MultilingualText{
				Fr: "Construire la capacité éducative et le capital humain",
				En: "Build educational capacity and human capital",
			},
			Icon: "📚", Color: "from-yellow-500 to-orange-600", Growth: "+18%",
			IsActive: true, CreatedAt: now,
		},
		{
			ID: "finance",
			Name: models.MultilingualText{
				Fr: "Finance et Banque", Ln: "Mbongo na Banki", Sw: "Fedha na Benki", En: "Finance & Banking",
			},
			Description: models.MultilingualText{
				Fr: "Renforcer les systèmes financiers et la croissance économique",
				En: "Strengthen financial systems and economic growth",
			},
			Icon: "💰", Color: "from-emerald-500 to-green-600", Growth: "+12%",
			IsActive: true, CreatedAt: now,
		},
		{
			ID: "engineering",
			Name: models.MultilingualText{
				Fr: "Ingénierie", Sw: "Uhandisi", En: "Engineering",
			},
			Description: models.MultilingualText{
				Fr: "Construire l'infrastructure et la capacité industrielle",
				En: "Build infrastructure and industrial capacity",
			},
			Icon: "⚙️", Color: "from-gray-500 to-slate-600", Growth: "+20%",
			IsActive: true, CreatedAt: now,
		},
		{
			ID: "creative",
			Name: models.MultilingualText{
				Fr: "Arts Créatifs", Ln: "Ba Arts ya bokeli", Sw: "Sanaa za Ubunifu", En: "Creative Arts",
			},
			Description: models.MultilingualText{
				Fr: "Promouvoir l'expression culturelle et l'économie créative",
				En: "Promote cultural expression and creative economy",
			},
			Icon: "🎨", Color: "from-pink-500 to-rose-600", Growth: "+8%",
			IsActive: true, CreatedAt: now,
		},
	}
}

func sampleCompanies(now time.Time) []models.Company {
	return []models.Company{
		{
			ID: "vodacom-congo", Name: "Vodacom Congo",
			Description: models.MultilingualText{
				Fr: "Leader des télécommunications en RDC",
				En: "Leading telecommunications company in DRC",
				Ln: "Mokambi ya ba télécommunications na RDC",
			},
			Location: "Kinshasa, RDC", SectorID: "technology", Size: "200+",
			Website: &models.ExternalLink{
				Name: "Site officiel", URL: "https://vodacom.cd",
				Description: "Site web officiel de Vodacom Congo",
			},
			ContactEmail: "careers@vodacom.cd",
			IsActive:     true, CreatedAt: now,
		},
		{
			ID: "orange-rdc", Name: "Orange RDC",
			Description: models.MultilingualText{
				Fr: "Opérateur de télécommunications et services numériques",
				En: "Telecommunications operator and digital services",
			},
			Location: "Kinshasa, RDC", SectorID: "technology", Size: "200+",
			Website: &models.ExternalLink{
				Name: "Orange RDC", URL: "https://orange.cd",
				Description: "Services de télécommunications",
			},
			ContactEmail: "emploi@orange.cd",
			IsActive:     true, CreatedAt: now,
		},
		{
			ID: "rawbank", Name: "Rawbank",
			Description: models.MultilingualText{
				Fr: "Première banque commerciale de la RDC",
				En: "Leading commercial bank in DRC",
			},
			Location: "Kinshasa, RDC", SectorID: "finance", Size: "200+",
			Website: &models.ExternalLink{
				Name: "Rawbank", URL: "https://rawbank.com",
				Description: "Services bancaires et financiers",
			},
			ContactEmail: "recrutement@rawbank.com",
			IsActive:     true, CreatedAt: now,
		},
		{
			ID: "unikin", Name: "Université de Kinshasa",
			Description: models.MultilingualText{
				Fr: "Principale université publique de la RDC",
				En: "Main public university of DRC",
			},
			Location: "Kinshasa, RDC", SectorID: "education", Size: "200+",
			Website: &models.ExternalLink{
				Name: "UNIKIN", URL: "https://unikin.ac.cd",
				Description: "Université de Kinshasa",
			},
			ContactEmail: "rh@unikin.ac.cd",
			IsActive:     true, CreatedAt: now,
		},
		{
			ID: "msf", Name: "Médecins Sans Frontières",
			Description: models.MultilingualText{
				Fr: "Organisation médicale humanitaire internationale",
				En: "International humanitarian medical organization",
			},
			Location: "Kinshasa, RDC", SectorID: "healthcare", Size: "51-200",
			Website: &models.ExternalLink{
				Name: "MSF", URL: "https://msf.org",
				Description: "Médecins Sans Frontières",
			},
			ContactEmail: "kinshasa-hr@msf.org",
			IsActive:     true, CreatedAt: now,
		},
	}
}

func sampleTraining(now time.Time) []models.Training {
	return []models.Training{
		{
			ID: "full-stack-development",
			Name: models.MultilingualText{
				Fr: "Développement Full Stack", En: "Full Stack Development",
			},
			Provider: "FreeCodeCamp",
			Description: models.MultilingualText{
				Fr: "Formation complète en développement web frontend et backend",
				En: "Complete web development frontend and backend training",
			},
			Duration: "6 mois", Cost: "Gratuit", Level: "Débutant",
			Language: "Français/Anglais", Format: "En ligne",
			ExternalLink: models.ExternalLink{
				Name: "FreeCodeCamp", URL: "https://freecodecamp.org",
				Description: "Plateforme d'apprentissage gratuite",
			},
			Skills:      []string{"JavaScript", "React", "Node.js", "MongoDB"},
			Certificate: true, IsActive: true, CreatedAt: now,
		},
		{
			ID: "tropical-medicine",
			Name: models.MultilingualText{
				Fr: "Médecine Tropicale", En: "Tropical Medicine", Sw: "Dawa za Kitropiki",
			},
			Provider: "Université de Kinshasa",
			Description: models.MultilingualText{
				Fr: "Formation spécialisée en médecine tropicale et maladies endémiques",
				En: "Specialized training in tropical medicine and endemic diseases",
			},
			Duration: "6 mois", Cost: "300$", Level: "Avancé",
			Language: "Français", Format: "Présentiel",
			ExternalLink: models.ExternalLink{
				Name: "Faculté de Médecine UNIKIN", URL: "https://unikin.ac.cd/faculte-medecine",
				Description: "Formation médicale spécialisée",
			},
			Skills:        []string{"Diagnostic tropical", "Épidémiologie", "Santé publique"},
			Prerequisites: []string{"Diplôme de médecine"},
			Certificate:   true, IsActive: true, CreatedAt: now,
		},
		{
			ID: "pmi-project-management",
			Name: models.MultilingualText{
				Fr: "Gestion de Projet PMI", En: "PMI Project Management",
			},
			Provider: "Project Management Institute",
			Description: models.MultilingualText{
				Fr: "Certification professionnelle en gestion de projet selon les standards PMI",
				En: "Professional project management certification according to PMI standards",
			},
			Duration: "4 mois", Cost: "500$", Level: "Intermédiaire",
			Language: "Français/Anglais", Format: "Hybride",
			ExternalLink: models.ExternalLink{
				Name: "PMI", URL: "https://pmi.org", Description: "Certification PMP",
			},
			Skills:      []string{"Planification", "Leadership", "Gestion des risques"},
			Certificate: true, IsActive: true, CreatedAt: now,
		},
	}
}

func sampleTestimonials(now time.Time) []models.Testimonial {
	return []models.Testimonial{
		{
			ID: "marie-nkunku-testimonial", Name: "Marie Nkunku",
			Position: "Développeuse Full Stack", Company: "Vodacom Congo",
			Quote: models.MultilingualText{
				Fr: "Travailler dans la tech en RDC signifie faire partie de la révolution numérique. Chaque application que nous construisons aide à connecter plus de Congolais aux opportunités.",
				En: "Working in tech in DRC means being part of the digital revolution. Every app we build helps connect more Congolese to opportunities.",
			},
			JobID: "software-developer", IsVerified: true, IsApproved: true, CreatedAt: now,
		},
		{
			ID: "patience-mwamba-testimonial", Name: "Dr. Patience Mwamba",
			Position: "Pédiatre", Company: "Cliniques Universitaires de Kinshasa",
			Quote: models.MultilingualText{
				Fr: "Être médecin en RDC signifie sauver des vies chaque jour et former la prochaine génération de professionnels de la santé.",
				En: "Being a doctor in DRC means saving lives every day and training the next generation of health professionals.",
			},
			JobID: "doctor", IsVerified: true, IsApproved: true, CreatedAt: now,
		},
	}
}

func sampleJobs(now time.Time) []models.Job {
	return []models.Job{
		{
			ID: "software-developer",
			Title: models.MultilingualText{
				Fr: "Développeur Logiciel", En: "Software Developer",
				Ln: "Mosali ya ba programme", Sw: "Mtengenezaji wa Programu",
			},
			SectorID: "technology",
			Description: models.MultilingualText{
				Fr: "Développer des applications et systèmes pour numériser les entreprises et services gouvernementaux de la RDC",
				En: "Develop applications and systems to digitize DRC businesses and government services",
			},
			Education:   []string{"Licence en Informatique", "Formation en développement web", "Autodidacte avec portfolio"},
			SalaryRange: "800$ - 2,500$/mois", HiringRate: "85%", GrowthProjection: "+25% sur 5 ans",
			Companies:    []string{"vodacom-congo", "orange-rdc"},
			Skills:       []string{"JavaScript", "Python", "React", "Développement mobile", "Gestion de base de données"},
			Training:     []string{"full-stack-development"},
			Testimonials: []string{"marie-nkunku-testimonial"},
			Requirements: models.MultilingualText{
				Fr: "Licence en informatique ou formation équivalente. Expérience en développement web.",
				En: "Computer science degree or equivalent training. Web development experience.",
			},
			Benefits: models.MultilingualText{
				Fr: "Salaire compétitif, formation continue, opportunités d'évolution",
				En: "Competitive salary, continuous training, growth opportunities",
			},
			WorkEnvironment: models.MultilingualText{
				Fr: "Environnement de travail moderne, équipes multiculturelles, télétravail possible",
				En: "Modern work environment, multicultural teams, remote work possible",
			},
			CareerPath: models.MultilingualText{
				Fr: "Développeur Junior → Développeur Senior → Lead Developer → Architecte Technique → CTO",
				En: "Junior Developer → Senior Developer → Lead Developer → Technical Architect → CTO",
			},
			IsActive: true, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "doctor",
			Title: models.MultilingualText{
				Fr: "Médecin Généraliste", En: "Medical Doctor",
				Ln: "Monganga ya mobimba", Sw: "Daktari wa Jumla",
			},
			SectorID: "healthcare",
			Description: models.MultilingualText{
				Fr: "Fournir des soins médicaux essentiels et renforcer les systèmes de santé à travers la RDC",
				En: "Provide essential medical care and strengthen healthcare systems across the DRC",
			},
			Education:   []string{"Diplôme de Médecine (7 ans)", "Formation de Résidence (3-5 ans)"},
			SalaryRange: "1,200$ - 4,000$/mois", HiringRate: "95%", GrowthProjection: "+20% sur 5 ans",
			Companies:    []string{"msf", "unikin"},
			Skills:       []string{"Diagnostic clinique", "Médecine d'urgence", "Médecine tropicale", "Soins aux patients"},
			Training:     []string{"tropical-medicine"},
			Testimonials: []string{"patience-mwamba-testimonial"},
			Requirements: models.MultilingualText{
				Fr: "Diplôme de médecine reconnu. Licence de pratique médicale. Expérience clinique requise.",
				En: "Recognized medical degree. Medical practice license. Clinical experience required.",
			},
			Benefits: models.MultilingualText{
				Fr: "Impact social important, formation spécialisée, opportunités internationales",
				En: "High social impact, specialized training, international opportunities",
			},
			WorkEnvironment: models.MultilingualText{
				Fr: "Hôpitaux modernes, équipes médicales expertes",
				En: "Modern hospitals, expert medical teams",
			},
			CareerPath: models.MultilingualText{
				Fr: "Médecin Généraliste → Spécialiste → Chef de Service → Directeur Médical",
				En: "General Practitioner → Specialist → Department Head → Medical Director",
			},
			IsActive: true, CreatedAt: now, UpdatedAt: now,
		},
	}
}
