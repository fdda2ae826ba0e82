package dto

// BranchResponse is one entry of the sport branch catalog
type BranchResponse struct {
	Name                 string                `json:"name" example:"Taekwondo"`
	RegistrationRequired bool                  `json:"registrationRequired" example:"true"`
	Categories           []AgeCategoryResponse `json:"categories"`
}

// AgeCategoryResponse is one age bracket of a branch
type AgeCategoryResponse struct {
	Name          string   `json:"name" example:"Yıldız Erkek"`
	WeightClasses []string `json:"weightClasses,omitempty"`
}

// DistrictSchoolsResponse lists the directory school names of a district
type DistrictSchoolsResponse struct {
	District string   `json:"district" example:"Kadıköy"`
	Schools  []string `json:"schools"`
}
