package bookingAttempts

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingAttemptMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingAttemptMongoRepository(db *mongo.Database) contracts.BookingAttemptRepository {
	return &BookingAttemptMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionBookingAttempts),
	}
}

func (repo *BookingAttemptMongoRepository) Record(ctx context.Context, attempt *models.BookingAttempt) error {
	_, err := repo.Collection.InsertOne(ctx, attempt)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

// FindByDoctorAndDate returns the journal of one doctor's day, oldest first.
func (repo *BookingAttemptMongoRepository) FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.BookingAttempt, error) {
	attempts := []models.BookingAttempt{}
	filter := bson.M{"doctorId": doctorID, "date": date}
	opts := options.Find().SetSort(bson.D{{Key: "recordedAt", Value: 1}})

	cursor, err := repo.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &attempts)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return attempts, nil
}
