package Models

import (
	"errors"
	"html"
	"strings"

	"github.com/krahulsahu/carevita-server/Utils/Token"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string        `gorm:"size:255;not null" json:"name"`
	Email    string        `gorm:"size:255;not null;unique" json:"email"`
	Password string        `gorm:"size:255;not null;" json:"password"`
	Tokens   []DeviceToken `gorm:"foreignKey:UserID"`
}

type DeviceToken struct {
	gorm.Model
	UserID uint
	Value  string `json:"value" gorm:"unique"`
}

func GetUserByID(uid uint) (User, error) {
	var user User

	if err := DB.First(&user, uid).Error; err != nil {
		return user, errors.New("User not found")
	}

	user.PrepareGive()

	return user, nil
}

func GetFCMsByID(uid uint) ([]string, error) {
	var fcms []string
	if err := DB.Model(&DeviceToken{}).Where("user_id = ?", uid).Select("value").Find(&fcms).Error; err != nil {
		return []string{}, errors.New("No FCMS found")
	}

	return fcms, nil
}

func (user *User) PrepareGive() {
	user.Password = ""
}

func VerifyPassword(password, hashedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func LoginCheck(email string, password string) (uint, string, error) {

	var err error

	user := User{}

	err = DB.Model(User{}).Where("email = ?", email).Take(&user).Error

	if err != nil {
		return 0, "", err
	}

	err = VerifyPassword(password, user.Password)

	if err != nil && errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return 0, "", err
	}

	token, err := Token.GenerateToken(user.ID)

	if err != nil {
		return 0, "", err
	}

	return user.ID, token, nil
}

func (user *User) SaveUser() (*User, error) {

	if err := user.BeforeSave(); err != nil {
		return &User{}, err
	}

	if err := DB.Create(&user).Error; err != nil {
		return &User{}, err
	}

	return user, nil
}

func (user *User) BeforeSave() error {

	//turn password into hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)

	//remove spaces in email
	user.Email = html.EscapeString(strings.TrimSpace(user.Email))

	return nil
}
