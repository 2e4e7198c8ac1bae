package catalog

import "github.com/klinika/backend-billing/internal/billing"

// Seed returns the startup catalog. Prices are minor units (centavos).
// The catalog resets to this set on every process start; durable storage is
// deliberately absent.
func Seed() []Item {
	return []Item{
		// Shared diagnostics
		{ID: "lab1", Name: "Complete Blood Count (CBC)", Price: 35000, Category: "Laboratory", Type: TypeBoth},
		{ID: "lab2", Name: "Urinalysis", Price: 15000, Category: "Laboratory", Type: TypeBoth},
		{ID: "lab3", Name: "Blood Chemistry Panel", Price: 85000, Category: "Laboratory", Type: TypeBoth},
		{ID: "lab4", Name: "Lipid Profile", Price: 55000, Category: "Laboratory", Type: TypeOutpatient},
		{ID: "lab5", Name: "Liver Function Test", Price: 65000, Category: "Laboratory", Type: TypeOutpatient},
		{ID: "lab6", Name: "Kidney Function Test", Price: 60000, Category: "Laboratory", Type: TypeOutpatient},
		{ID: "lab7", Name: "Thyroid Function Test", Price: 75000, Category: "Laboratory", Type: TypeOutpatient},
		{ID: "lab8", Name: "Blood Sugar (FBS)", Price: 20000, Category: "Laboratory", Type: TypeOutpatient},
		{ID: "lab9", Name: "Coagulation Studies", Price: 65000, Category: "Laboratory", Type: TypeInpatient},

		// Imaging
		{ID: "xray1", Name: "Chest X-Ray (PA)", Price: 45000, Category: "X-Ray", Type: TypeOutpatient},
		{ID: "xray2", Name: "Chest X-Ray (AP/Lat)", Price: 65000, Category: "X-Ray", Type: TypeOutpatient},
		{ID: "xray3", Name: "Abdominal X-Ray", Price: 50000, Category: "X-Ray", Type: TypeOutpatient},
		{ID: "xray4", Name: "Spine X-Ray", Price: 55000, Category: "X-Ray", Type: TypeOutpatient},
		{ID: "xray5", Name: "Extremity X-Ray", Price: 40000, Category: "X-Ray", Type: TypeOutpatient},
		{ID: "us1", Name: "Abdominal Ultrasound", Price: 120000, Category: "Ultrasound", Type: TypeOutpatient},
		{ID: "us2", Name: "Pelvic Ultrasound", Price: 100000, Category: "Ultrasound", Type: TypeOutpatient},
		{ID: "us3", Name: "Thyroid Ultrasound", Price: 90000, Category: "Ultrasound", Type: TypeOutpatient},
		{ID: "us4", Name: "Breast Ultrasound", Price: 110000, Category: "Ultrasound", Type: TypeOutpatient},
		{ID: "rad1", Name: "Chest X-Ray", Price: 45000, Category: "Radiology", Type: TypeInpatient},
		{ID: "rad2", Name: "CT Scan", Price: 850000, Category: "Radiology", Type: TypeInpatient},
		{ID: "rad3", Name: "MRI", Price: 1500000, Category: "Radiology", Type: TypeInpatient},
		{ID: "rad4", Name: "Ultrasound", Price: 120000, Category: "Radiology", Type: TypeInpatient},

		// Cardio-diagnostics
		{ID: "ecg1", Name: "ECG (12 Lead)", Price: 40000, Category: "ECG/EEG", Type: TypeOutpatient},
		{ID: "ecg2", Name: "Holter Monitor (24hr)", Price: 250000, Category: "ECG/EEG", Type: TypeOutpatient},
		{ID: "eeg1", Name: "EEG", Price: 180000, Category: "ECG/EEG", Type: TypeOutpatient},

		// Consultation (toggle category: presence is binary)
		{ID: "con1", Name: "General Consultation", Price: 50000, Category: "Consultation", Type: TypeOutpatient},
		{ID: "con2", Name: "Specialist Consultation", Price: 80000, Category: "Consultation", Type: TypeOutpatient},
		{ID: "con3", Name: "Emergency Consultation", Price: 100000, Category: "Consultation", Type: TypeOutpatient},

		// Minor procedures
		{ID: "proc1", Name: "Wound Dressing", Price: 30000, Category: "Minor Procedures", Type: TypeOutpatient},
		{ID: "proc2", Name: "Suturing (Simple)", Price: 50000, Category: "Minor Procedures", Type: TypeOutpatient},
		{ID: "proc3", Name: "Suturing (Complex)", Price: 100000, Category: "Minor Procedures", Type: TypeOutpatient},
		{ID: "proc4", Name: "Incision & Drainage", Price: 80000, Category: "Minor Procedures", Type: TypeOutpatient},
		{ID: "proc5", Name: "Nebulization", Price: 20000, Category: "Minor Procedures", Type: TypeOutpatient},

		// Injections
		{ID: "inj1", Name: "IV Injection", Price: 15000, Category: "Injections", Type: TypeOutpatient},
		{ID: "inj2", Name: "IM Injection", Price: 10000, Category: "Injections", Type: TypeOutpatient},
		{ID: "inj3", Name: "IV Fluid Administration", Price: 35000, Category: "Injections", Type: TypeOutpatient},

		// Medications
		{ID: "med1", Name: "Paracetamol 500mg", Price: 500, Category: "Medications", Type: TypeOutpatient},
		{ID: "med2", Name: "Amoxicillin 500mg", Price: 1500, Category: "Medications", Type: TypeOutpatient},
		{ID: "med3", Name: "Omeprazole 20mg", Price: 1200, Category: "Medications", Type: TypeOutpatient},
		{ID: "med4", Name: "Metformin 500mg", Price: 800, Category: "Medications", Type: TypeOutpatient},

		// Supplies
		{ID: "sup1", Name: "Surgical Gloves (pair)", Price: 2500, Category: "Medical Supplies", Type: TypeOutpatient},
		{ID: "sup2", Name: "Syringe 5ml", Price: 1500, Category: "Medical Supplies", Type: TypeOutpatient},
		{ID: "sup3", Name: "Gauze Pad", Price: 1000, Category: "Medical Supplies", Type: TypeOutpatient},
		{ID: "sup4", Name: "Bandage Roll", Price: 3000, Category: "Medical Supplies", Type: TypeOutpatient},
		{ID: "isup1", Name: "IV Set", Price: 15000, Category: "Medical Supplies", Type: TypeInpatient},
		{ID: "isup2", Name: "Catheter Kit", Price: 35000, Category: "Medical Supplies", Type: TypeInpatient},
		{ID: "isup3", Name: "Surgical Kit", Price: 250000, Category: "Medical Supplies", Type: TypeInpatient},
		{ID: "isup4", Name: "Wound Care Set", Price: 50000, Category: "Medical Supplies", Type: TypeInpatient},

		// Certificates and abstracts
		{ID: "oth1", Name: "Medical Certificate", Price: 20000, Category: "Other Services", Type: TypeOutpatient},
		{ID: "oth2", Name: "Fit to Work Certificate", Price: 30000, Category: "Other Services", Type: TypeOutpatient},
		{ID: "oth3", Name: "Medical Abstract", Price: 25000, Category: "Other Services", Type: TypeOutpatient},

		// Room & board (daily rates)
		{ID: "room1", Name: "Private Room", Price: 350000, Category: "Room & Board", Daily: true, Type: TypeInpatient},
		{ID: "room2", Name: "Semi-Private Room", Price: 250000, Category: "Room & Board", Daily: true, Type: TypeInpatient},
		{ID: "room3", Name: "Ward Bed", Price: 150000, Category: "Room & Board", Daily: true, Type: TypeInpatient},
		{ID: "room4", Name: "Suite Room", Price: 600000, Category: "Room & Board", Daily: true, Type: TypeInpatient},

		// Professional fees
		{ID: "pf1", Name: "Attending Physician Fee", Price: 150000, Category: "Professional Fees", Daily: true, Type: TypeInpatient},
		{ID: "pf2", Name: "Surgeon Fee", Price: 1500000, Category: "Professional Fees", Type: TypeInpatient},
		{ID: "pf3", Name: "Anesthesiologist Fee", Price: 800000, Category: "Professional Fees", Type: TypeInpatient},
		{ID: "pf4", Name: "Specialist Consultation", Price: 120000, Category: "Professional Fees", Type: TypeInpatient},

		// Pharmacy
		{ID: "pharma1", Name: "IV Fluids (per bag)", Price: 25000, Category: "Pharmacy", Type: TypeInpatient},
		{ID: "pharma2", Name: "Antibiotics (per dose)", Price: 50000, Category: "Pharmacy", Type: TypeInpatient},
		{ID: "pharma3", Name: "Pain Medication (per dose)", Price: 20000, Category: "Pharmacy", Type: TypeInpatient},
		{ID: "pharma4", Name: "Cardiac Medications", Price: 35000, Category: "Pharmacy", Type: TypeInpatient},

		// Operating room
		{ID: "or1", Name: "OR Use (per hour)", Price: 500000, Category: "Operating Room", Type: TypeInpatient},
		{ID: "or2", Name: "Minor Surgery OR", Price: 800000, Category: "Operating Room", Type: TypeInpatient},
		{ID: "or3", Name: "Major Surgery OR", Price: 1500000, Category: "Operating Room", Type: TypeInpatient},

		// Critical care (daily rates)
		{ID: "icu1", Name: "ICU Room", Price: 800000, Category: "ICU/CCU", Daily: true, Type: TypeInpatient},
		{ID: "icu2", Name: "CCU Room", Price: 750000, Category: "ICU/CCU", Daily: true, Type: TypeInpatient},
		{ID: "icu3", Name: "NICU Room", Price: 900000, Category: "ICU/CCU", Daily: true, Type: TypeInpatient},

		// Nursing care (daily rates)
		{ID: "nur1", Name: "Nursing Service Fee", Price: 80000, Category: "Nursing Care", Daily: true, Type: TypeInpatient},
		{ID: "nur2", Name: "Special Nursing Care", Price: 150000, Category: "Nursing Care", Daily: true, Type: TypeInpatient},

		// Ancillary inpatient services
		{ID: "ioth1", Name: "Oxygen Therapy", Price: 50000, Category: "Other Services", Daily: true, Type: TypeInpatient},
		{ID: "ioth2", Name: "ECG Monitoring", Price: 30000, Category: "Other Services", Daily: true, Type: TypeInpatient},
		{ID: "ioth3", Name: "Nebulization", Price: 20000, Category: "Other Services", Type: TypeInpatient},
	}
}

// Categories returns the category metadata for a calculator mode, in display
// order. Consultation is a toggle category (a visit either happened or it
// did not); Therapy Services takes manual entries because its charges are
// quoted per case and never live in the catalog.
func Categories(mode Mode) []Category {
	switch mode {
	case ModeInpatient:
		return []Category{
			{Name: "Room & Board", Mode: billing.ModeSearch},
			{Name: "Professional Fees", Mode: billing.ModeSearch},
			{Name: "Laboratory", Mode: billing.ModeSearch},
			{Name: "Radiology", Mode: billing.ModeSearch},
			{Name: "Pharmacy", Mode: billing.ModeSearch},
			{Name: "Operating Room", Mode: billing.ModeSearch},
			{Name: "Recovery Room", Mode: billing.ModeSearch},
			{Name: "ICU/CCU", Mode: billing.ModeSearch},
			{Name: "Emergency Room", Mode: billing.ModeSearch},
			{Name: "Medical Supplies", Mode: billing.ModeSearch},
			{Name: "Nursing Care", Mode: billing.ModeSearch},
			{Name: "Therapy Services", Mode: billing.ModeManual},
			{Name: "Blood Products", Mode: billing.ModeSearch},
			{Name: "Dialysis", Mode: billing.ModeSearch},
			{Name: "Respiratory Therapy", Mode: billing.ModeSearch},
			{Name: "Anesthesia", Mode: billing.ModeSearch},
			{Name: "Special Procedures", Mode: billing.ModeSearch},
			{Name: "Dietary Services", Mode: billing.ModeSearch},
			{Name: "Other Services", Mode: billing.ModeSearch},
		}
	default:
		return []Category{
			{Name: "Laboratory", Mode: billing.ModeSearch},
			{Name: "X-Ray", Mode: billing.ModeSearch},
			{Name: "Ultrasound", Mode: billing.ModeSearch},
			{Name: "ECG/EEG", Mode: billing.ModeSearch},
			{Name: "Consultation", Mode: billing.ModeToggle},
			{Name: "Minor Procedures", Mode: billing.ModeSearch},
			{Name: "Injections", Mode: billing.ModeSearch},
			{Name: "Medications", Mode: billing.ModeSearch},
			{Name: "Medical Supplies", Mode: billing.ModeSearch},
			{Name: "Other Services", Mode: billing.ModeSearch},
		}
	}
}

// InteractionFor resolves the interaction mode declared for a category in
// the given calculator mode. Unknown categories select like search ones.
func InteractionFor(mode Mode, category string) billing.InteractionMode {
	for _, c := range Categories(mode) {
		if c.Name == category {
			return c.Mode
		}
	}
	return billing.ModeSearch
}
