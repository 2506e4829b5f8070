package entity

type DiseaseInfo struct {
	DiseaseID   int64  `json:"disease_id,omitempty"`
	Name        string `json:"name"`
	CropName    string `json:"crop_name,omitempty"`
	Description string `json:"description,omitempty"`
	Symptoms    string `json:"symptoms,omitempty"`
	Treatment   string `json:"treatment,omitempty"`
}
